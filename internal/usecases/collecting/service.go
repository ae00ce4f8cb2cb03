package collecting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/infrastructure/repository"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Collector interface {
	CollectResources(ctx context.Context, userID string, provider domain.Provider) ([]*domain.ResourceSummary, error)
	ListResources(ctx context.Context, userID string, provider domain.Provider) ([]*domain.ResourceSummary, error)
	FetchCosts(ctx context.Context, userID string, provider domain.Provider, period domain.CostPeriod) (*domain.CostSnapshot, error)
	GetCosts(ctx context.Context, userID string, provider domain.Provider) (*domain.CostSnapshot, error)
	CollectConnection(ctx context.Context, conn *domain.CloudConnection) ([]*domain.ResourceSummary, error)
	FetchConnectionCosts(ctx context.Context, conn *domain.CloudConnection, period domain.CostPeriod) (*domain.CostSnapshot, error)
}

type Service struct {
	connectionRepo repository.ConnectionRepository
	resourceRepo   repository.ResourceSummaryRepository
	costRepo       repository.CostSnapshotRepository
	integrators    integrator.Registry
	now            func() time.Time
}

func NewService(
	connectionRepo repository.ConnectionRepository,
	resourceRepo repository.ResourceSummaryRepository,
	costRepo repository.CostSnapshotRepository,
	integrators integrator.Registry,
) Collector {
	return &Service{
		connectionRepo: connectionRepo,
		resourceRepo:   resourceRepo,
		costRepo:       costRepo,
		integrators:    integrators,
		now:            time.Now,
	}
}

func (s *Service) CollectResources(ctx context.Context, userID string, provider domain.Provider) ([]*domain.ResourceSummary, error) {
	conn, err := s.activeConnection(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	return s.CollectConnection(ctx, conn)
}

// CollectConnection scans the vendor account of conn and upserts one summary
// per resource type.
func (s *Service) CollectConnection(ctx context.Context, conn *domain.CloudConnection) ([]*domain.ResourceSummary, error) {
	cloud, err := s.resolveIntegrator(conn.Provider)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  conn.UserID,
		"provider": conn.Provider,
	})

	summaries, err := cloud.CollectResources(ctx, conn.Credentials)
	if err != nil {
		logger.WithError(err).Error("Resource collection failed")
		return nil, upstreamError(err, string(conn.Provider))
	}

	for _, summary := range summaries {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewCollectError(ErrGenerateID, apiErrors.ErrInternalServer, string(conn.Provider), err.Error())
		}

		summary.ID = id
		summary.UserID = conn.UserID
		summary.Provider = conn.Provider

		if err := s.resourceRepo.Upsert(ctx, summary); err != nil {
			logger.WithError(err).Error("Failed to store resource summary")
			return nil, NewCollectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(conn.Provider), err.Error())
		}
	}

	logger.WithField("resource_types", len(summaries)).Info("Resources collected")

	return summaries, nil
}

func (s *Service) ListResources(ctx context.Context, userID string, provider domain.Provider) ([]*domain.ResourceSummary, error) {
	summaries, err := s.resourceRepo.ListByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return nil, NewCollectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(provider), err.Error())
	}

	return summaries, nil
}

func (s *Service) FetchCosts(ctx context.Context, userID string, provider domain.Provider, period domain.CostPeriod) (*domain.CostSnapshot, error) {
	if period.Start.IsZero() || period.End.IsZero() || period.End.Before(period.Start) {
		return nil, NewCollectError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, string(provider), "from must not be after to")
	}

	conn, err := s.activeConnection(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	return s.FetchConnectionCosts(ctx, conn, period)
}

// FetchConnectionCosts retrieves the daily cost series of conn and supersedes
// the stored snapshot.
func (s *Service) FetchConnectionCosts(ctx context.Context, conn *domain.CloudConnection, period domain.CostPeriod) (*domain.CostSnapshot, error) {
	cloud, err := s.resolveIntegrator(conn.Provider)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  conn.UserID,
		"provider": conn.Provider,
	})

	series, err := cloud.FetchCosts(ctx, conn.Credentials, period)
	if err != nil {
		logger.WithError(err).Error("Cost fetch failed")
		return nil, upstreamError(err, string(conn.Provider))
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCollectError(ErrGenerateID, apiErrors.ErrInternalServer, string(conn.Provider), err.Error())
	}

	snapshot := &domain.CostSnapshot{
		ID:          id,
		UserID:      conn.UserID,
		Provider:    conn.Provider,
		CostData:    *series,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		FetchedAt:   s.now().UTC(),
	}

	if err := s.costRepo.Replace(ctx, snapshot); err != nil {
		logger.WithError(err).Error("Failed to store cost snapshot")
		return nil, NewCollectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(conn.Provider), err.Error())
	}

	logger.WithFields(log.Fields{
		"days":  len(series.TimeSeries),
		"total": utils.RoundWithTwoDecimalPlace(series.Total()),
	}).Info("Costs fetched")

	return snapshot, nil
}

func (s *Service) GetCosts(ctx context.Context, userID string, provider domain.Provider) (*domain.CostSnapshot, error) {
	snapshot, err := s.costRepo.GetLatest(ctx, userID, provider)
	if err != nil {
		return nil, NewCollectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(provider), err.Error())
	}

	if snapshot == nil {
		return nil, NewCollectError(ErrCostsNotFetched, apiErrors.ErrNotFound, string(provider), "")
	}

	return snapshot, nil
}

func (s *Service) activeConnection(ctx context.Context, userID string, provider domain.Provider) (*domain.CloudConnection, error) {
	conn, err := s.connectionRepo.GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return nil, NewCollectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(provider), err.Error())
	}

	if conn == nil || !conn.Active {
		return nil, NewCollectError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, string(provider), "")
	}

	return conn, nil
}

func (s *Service) resolveIntegrator(provider domain.Provider) (integrator.CloudIntegrator, error) {
	cloud, err := s.integrators.Get(provider)
	if errors.Is(err, integrator.ErrUnsupportedProvider) {
		return nil, NewCollectError(ErrUnsupportedProvider, apiErrors.ErrUnknownProvider, string(provider), "")
	}

	return cloud, err
}

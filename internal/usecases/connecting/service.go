package connecting

import (
	"context"
	"errors"

	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/infrastructure/repository"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type ConnectionService interface {
	Connect(ctx context.Context, userID string, provider domain.Provider, creds domain.Credentials) (*domain.CloudConnection, error)
	ListConnections(ctx context.Context, userID string) ([]*domain.CloudConnection, error)
	Disconnect(ctx context.Context, userID string, provider domain.Provider) error
}

type Service struct {
	connectionRepo repository.ConnectionRepository
	integrators    integrator.Registry
}

func NewService(connectionRepo repository.ConnectionRepository, integrators integrator.Registry) ConnectionService {
	return &Service{
		connectionRepo: connectionRepo,
		integrators:    integrators,
	}
}

// Connect checks the credentials against the vendor and stores them. An
// existing connection for the same provider is overwritten and reactivated.
func (s *Service) Connect(ctx context.Context, userID string, provider domain.Provider, creds domain.Credentials) (*domain.CloudConnection, error) {
	if err := creds.Validate(provider); err != nil {
		return nil, NewConnectionError(ErrMissingCredentials, apiErrors.ErrMissingRequiredData, string(provider), err.Error())
	}

	cloud, err := s.integrators.Get(provider)
	if err != nil {
		return nil, NewConnectionError(ErrUnsupportedProvider, apiErrors.ErrUnknownProvider, string(provider), "")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  userID,
		"provider": provider,
	})

	if err := cloud.Validate(ctx, creds); err != nil {
		logger.WithError(err).Warn("Credential validation failed")
		return nil, validationError(err, provider)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewConnectionError(ErrGenerateID, apiErrors.ErrInternalServer, string(provider), err.Error())
	}

	conn := &domain.CloudConnection{
		ID:          id,
		UserID:      userID,
		Provider:    provider,
		Credentials: creds,
		Active:      true,
	}

	if err := s.connectionRepo.Save(ctx, conn); err != nil {
		logger.WithError(err).Error("Failed to store connection")
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(provider), err.Error())
	}

	logger.Info("Provider connected")

	return conn, nil
}

func (s *Service) ListConnections(ctx context.Context, userID string) ([]*domain.CloudConnection, error) {
	connections, err := s.connectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return connections, nil
}

func (s *Service) Disconnect(ctx context.Context, userID string, provider domain.Provider) error {
	err := s.connectionRepo.SetActive(ctx, userID, provider, false)
	if errors.Is(err, repository.ErrNotFound) {
		return NewConnectionError(ErrConnectionNotFound, apiErrors.ErrConnectionNotFound, string(provider), "")
	}
	if err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, string(provider), err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  userID,
		"provider": provider,
	}).Info("Provider disconnected")

	return nil
}

func validationError(err error, provider domain.Provider) *ConnectionError {
	if errors.Is(err, integrator.ErrInvalidCredentials) {
		return NewConnectionError(ErrCredentialsRejected, apiErrors.ErrInvalidFormat, string(provider), err.Error())
	}

	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) && httpErr.IsClientError() {
		return NewConnectionError(ErrCredentialsRejected, apiErrors.ErrUpstreamRejected, string(provider), err.Error())
	}

	return NewConnectionError(ErrProviderUnavailable, apiErrors.ErrExternalService, string(provider), err.Error())
}

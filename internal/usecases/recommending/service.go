package recommending

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm"
	"github.com/vfg2006/cloud-cost-api/infrastructure/repository"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Recommender interface {
	GenerateForResource(ctx context.Context, userID string, provider domain.Provider, resource domain.ResourceInput) ([]*domain.Recommendation, error)
	GenerateFromAnalysis(ctx context.Context, userID string, provider domain.Provider, input domain.AnalysisInput) ([]*domain.Recommendation, error)
	ListRecommendations(ctx context.Context, userID string, provider *domain.Provider) ([]*domain.Recommendation, error)
}

type Service struct {
	generator          llm.TextGenerator
	recommendationRepo repository.RecommendationRepository
	resourceRepo       repository.ResourceSummaryRepository
	costRepo           repository.CostSnapshotRepository
	now                func() time.Time
}

func NewService(
	generator llm.TextGenerator,
	recommendationRepo repository.RecommendationRepository,
	resourceRepo repository.ResourceSummaryRepository,
	costRepo repository.CostSnapshotRepository,
) Recommender {
	return &Service{
		generator:          generator,
		recommendationRepo: recommendationRepo,
		resourceRepo:       resourceRepo,
		costRepo:           costRepo,
		now:                time.Now,
	}
}

// sourceAnalysis is the audit document stored with every recommendation of a run.
type sourceAnalysis struct {
	Input    any    `json:"input"`
	Response string `json:"response"`
}

func (s *Service) GenerateForResource(ctx context.Context, userID string, provider domain.Provider, resource domain.ResourceInput) ([]*domain.Recommendation, error) {
	if err := validateResource(resource); err != nil {
		return nil, err
	}

	prompt, err := resourcePrompt(provider, resource)
	if err != nil {
		return nil, NewRecommendationError(err, apiErrors.ErrInternalServer, "failed to build prompt")
	}

	resourceIDs := make([]string, 0, 1)
	if resource.ID != "" {
		resourceIDs = append(resourceIDs, resource.ID)
	}

	return s.generate(ctx, userID, provider, resourceIDs, resource, prompt)
}

// GenerateFromAnalysis analyzes the payload, or the stored resource summaries
// and latest cost snapshot when the payload is empty.
func (s *Service) GenerateFromAnalysis(ctx context.Context, userID string, provider domain.Provider, input domain.AnalysisInput) ([]*domain.Recommendation, error) {
	if input.IsEmpty() {
		stored, err := s.storedAnalysis(ctx, userID, provider)
		if err != nil {
			return nil, err
		}
		input = stored
	}

	for _, resource := range input.ResourceData {
		if err := validateResource(resource); err != nil {
			return nil, err
		}
	}

	prompt, err := analysisPrompt(provider, input)
	if err != nil {
		return nil, NewRecommendationError(err, apiErrors.ErrInvalidFormat, "costData is not valid JSON")
	}

	return s.generate(ctx, userID, provider, input.ResourceIDs(), input, prompt)
}

func (s *Service) ListRecommendations(ctx context.Context, userID string, provider *domain.Provider) ([]*domain.Recommendation, error) {
	recommendations, err := s.recommendationRepo.ListByUser(ctx, userID, provider)
	if err != nil {
		return nil, NewRecommendationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return recommendations, nil
}

func (s *Service) storedAnalysis(ctx context.Context, userID string, provider domain.Provider) (domain.AnalysisInput, error) {
	input := domain.AnalysisInput{}

	summaries, err := s.resourceRepo.ListByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return input, NewRecommendationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	for _, summary := range summaries {
		input.ResourceData = append(input.ResourceData, domain.ResourceInputFromSummary(summary))
	}

	snapshot, err := s.costRepo.GetLatest(ctx, userID, provider)
	if err != nil {
		return input, NewRecommendationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if snapshot != nil {
		costData, err := json.Marshal(snapshot.CostData)
		if err != nil {
			return input, NewRecommendationError(err, apiErrors.ErrInternalServer, "failed to encode cost snapshot")
		}
		input.CostData = costData
	}

	if input.IsEmpty() {
		return input, NewRecommendationError(ErrNoAnalysisData, apiErrors.ErrMissingRequiredData, "collect resources or fetch costs first")
	}

	return input, nil
}

// generate calls the model, parses its answer and replaces the stored set. A
// failed model call returns before anything is deleted.
func (s *Service) generate(ctx context.Context, userID string, provider domain.Provider, resourceIDs []string, payload any, prompt string) ([]*domain.Recommendation, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  userID,
		"provider": provider,
	})

	text, err := s.generator.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		recommendationRuns.WithLabelValues(string(provider), outcomeGenerationError).Inc()
		logger.WithError(err).Error("Recommendation generation failed")
		return nil, generationError(err)
	}

	drafts := ParseRecommendations(text)

	audit, err := json.Marshal(sourceAnalysis{Input: payload, Response: text})
	if err != nil {
		return nil, NewRecommendationError(err, apiErrors.ErrInternalServer, "failed to encode source analysis")
	}

	createdAt := s.now().UTC()
	recommendations := make([]*domain.Recommendation, 0, len(drafts))
	for position, draft := range drafts {
		recommendations = append(recommendations, &domain.Recommendation{
			ID:               uuid.NewString(),
			UserID:           userID,
			Provider:         provider,
			Title:            draft.Title,
			Description:      draft.Description,
			Priority:         draft.Priority,
			PotentialSavings: draft.PotentialSavings,
			ResourceIDs:      resourceIDs,
			SourceAnalysis:   audit,
			Position:         position,
			CreatedAt:        createdAt,
		})
	}

	if err := s.recommendationRepo.ReplaceForUserProvider(ctx, userID, provider, recommendations); err != nil {
		recommendationRuns.WithLabelValues(string(provider), outcomePersistenceError).Inc()
		logger.WithError(err).Error("Failed to store recommendations")
		return nil, NewRecommendationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	recommendationRuns.WithLabelValues(string(provider), outcomeSuccess).Inc()
	recommendationsGenerated.WithLabelValues(string(provider)).Add(float64(len(recommendations)))
	logger.WithField("recommendations", len(recommendations)).Info("Recommendations replaced")

	return recommendations, nil
}

func generationError(err error) error {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return NewRecommendationError(ErrMissingConfig, apiErrors.ErrMissingConfig, err.Error())
	}

	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) && httpErr.IsClientError() {
		return NewRecommendationError(ErrUpstreamRejected, apiErrors.ErrUpstreamRejected, httpErr.Error())
	}

	return NewRecommendationError(ErrGeneration, apiErrors.ErrExternalService, err.Error())
}

func validateResource(resource domain.ResourceInput) error {
	switch resource.ResourceType {
	case domain.ResourceTypeVirtualMachine, domain.ResourceTypeDatabase, domain.ResourceTypeStorage:
	default:
		return NewRecommendationError(ErrInvalidResource, apiErrors.ErrInvalidRequest, "unknown resource_type "+string(resource.ResourceType))
	}

	if resource.Count < 0 {
		return NewRecommendationError(ErrInvalidResource, apiErrors.ErrInvalidRequest, "count must not be negative")
	}

	if resource.UsagePercentage < 0 || resource.UsagePercentage > 100 {
		return NewRecommendationError(ErrInvalidResource, apiErrors.ErrInvalidRequest, "usage_percentage must be between 0 and 100")
	}

	if resource.Cost != nil && *resource.Cost < 0 {
		return NewRecommendationError(ErrInvalidResource, apiErrors.ErrInvalidRequest, "cost must not be negative")
	}

	return nil
}

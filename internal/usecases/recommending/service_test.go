package recommending

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm"
	llmmocks "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/cloud-cost-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

const modelAnswer = "1. Resize idle VMs\nPriority: High\nPotential savings: $120/month\n2. Delete orphaned disks\nPriority: Low\n"

type serviceMocks struct {
	generator       *llmmocks.MockTextGenerator
	recommendations *mocks.MockRecommendationRepository
	resources       *mocks.MockResourceSummaryRepository
	costs           *mocks.MockCostSnapshotRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		generator:       llmmocks.NewMockTextGenerator(ctrl),
		recommendations: mocks.NewMockRecommendationRepository(ctrl),
		resources:       mocks.NewMockResourceSummaryRepository(ctrl),
		costs:           mocks.NewMockCostSnapshotRepository(ctrl),
	}

	service := &Service{
		generator:          m.generator,
		recommendationRepo: m.recommendations,
		resourceRepo:       m.resources,
		costRepo:           m.costs,
		now:                func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}

	return service, m
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_GenerateForResource(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	resource := domain.ResourceInput{
		ID:              "res-1",
		ResourceType:    domain.ResourceTypeVirtualMachine,
		Count:           12,
		UsagePercentage: 18.5,
		Cost:            floatPtr(340),
	}

	m.generator.EXPECT().
		Generate(ctx, systemPrompt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
			assert.Contains(t, prompt, "AWS virtual machines")
			assert.Contains(t, prompt, `"usage_percentage": 18.5`)
			return modelAnswer, nil
		})

	var stored []*domain.Recommendation
	m.recommendations.EXPECT().
		ReplaceForUserProvider(ctx, "user-1", domain.ProviderAWS, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ domain.Provider, recs []*domain.Recommendation) error {
			stored = recs
			return nil
		})

	result, err := service.GenerateForResource(ctx, "user-1", domain.ProviderAWS, resource)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, stored, result)

	assert.Equal(t, "Resize idle VMs", result[0].Title)
	assert.Equal(t, domain.PriorityHigh, result[0].Priority)
	assert.Equal(t, 120.0, result[0].PotentialSavings)
	assert.Equal(t, 0, result[0].Position)
	assert.Equal(t, "Delete orphaned disks", result[1].Title)
	assert.Equal(t, domain.PriorityLow, result[1].Priority)
	assert.Equal(t, 1, result[1].Position)

	assert.NotEqual(t, result[0].ID, result[1].ID)
	for _, rec := range result {
		assert.Equal(t, "user-1", rec.UserID)
		assert.Equal(t, domain.ProviderAWS, rec.Provider)
		assert.Equal(t, []string{"res-1"}, rec.ResourceIDs)
		assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), rec.CreatedAt)
		assert.JSONEq(t, `{
			"input": {"id":"res-1","resource_type":"virtual_machines","count":12,"usage_percentage":18.5,"cost":340},
			"response": "`+"1. Resize idle VMs\\nPriority: High\\nPotential savings: $120/month\\n2. Delete orphaned disks\\nPriority: Low\\n"+`"
		}`, string(rec.SourceAnalysis))
	}
}

func TestService_GenerateForResourceFreshIDsEveryRun(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()
	resource := domain.ResourceInput{ResourceType: domain.ResourceTypeStorage, Count: 3}

	m.generator.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).Return(modelAnswer, nil).Times(2)
	m.recommendations.EXPECT().ReplaceForUserProvider(ctx, "user-1", domain.ProviderGCP, gomock.Any()).Return(nil).Times(2)

	first, err := service.GenerateForResource(ctx, "user-1", domain.ProviderGCP, resource)
	require.NoError(t, err)
	second, err := service.GenerateForResource(ctx, "user-1", domain.ProviderGCP, resource)
	require.NoError(t, err)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Equal(t, []string{}, first[0].ResourceIDs)
}

func TestService_GenerateForResourceInvalid(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		resource domain.ResourceInput
	}{
		{name: "unknown type", resource: domain.ResourceInput{ResourceType: "queues"}},
		{name: "negative count", resource: domain.ResourceInput{ResourceType: domain.ResourceTypeDatabase, Count: -1}},
		{name: "usage above 100", resource: domain.ResourceInput{ResourceType: domain.ResourceTypeDatabase, UsagePercentage: 101}},
		{name: "negative cost", resource: domain.ResourceInput{ResourceType: domain.ResourceTypeDatabase, Cost: floatPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.GenerateForResource(context.Background(), "user-1", domain.ProviderAWS, tt.resource)

			var recErr *RecommendationError
			require.ErrorAs(t, err, &recErr)
			assert.ErrorIs(t, err, ErrInvalidResource)
			assert.Equal(t, apiErrors.ErrInvalidRequest, recErr.Code)
		})
	}
}

func TestService_GenerationFailureDeletesNothing(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     string
	}{
		{
			name:     "missing api key",
			err:      llm.ErrMissingAPIKey,
			sentinel: ErrMissingConfig,
			code:     apiErrors.ErrMissingConfig,
		},
		{
			name:     "model rejected the request",
			err:      &utils.HTTPError{Service: "llm", StatusCode: http.StatusBadRequest, Status: "400 Bad Request", Body: "max_tokens too large"},
			sentinel: ErrUpstreamRejected,
			code:     apiErrors.ErrUpstreamRejected,
		},
		{
			name:     "model unavailable",
			err:      &utils.HTTPError{Service: "llm", StatusCode: 529, Status: "529", Body: "overloaded"},
			sentinel: ErrGeneration,
			code:     apiErrors.ErrExternalService,
		},
		{
			name:     "transport error",
			err:      errors.New("context deadline exceeded"),
			sentinel: ErrGeneration,
			code:     apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", tt.err)
			m.recommendations.EXPECT().ReplaceForUserProvider(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := service.GenerateForResource(context.Background(), "user-1", domain.ProviderAzure, domain.ResourceInput{
				ResourceType: domain.ResourceTypeVirtualMachine,
			})

			var recErr *RecommendationError
			require.ErrorAs(t, err, &recErr)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.code, recErr.Code)
		})
	}
}

func TestService_PersistenceFailure(t *testing.T) {
	service, m := newTestService(t)

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(modelAnswer, nil)
	m.recommendations.EXPECT().
		ReplaceForUserProvider(gomock.Any(), "user-1", domain.ProviderAWS, gomock.Any()).
		Return(errors.New("replace recommendations: insert: connection reset"))

	_, err := service.GenerateFromAnalysis(context.Background(), "user-1", domain.ProviderAWS, domain.AnalysisInput{
		CostData: []byte(`{"currency":"USD","timeSeries":[]}`),
	})

	var recErr *RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, recErr.Code)
}

func TestService_GenerateFromAnalysis(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	input := domain.AnalysisInput{
		CostData: []byte(`{"currency":"USD","timeSeries":[{"date":"2024-01-01","cost":10}]}`),
		ResourceData: []domain.ResourceInput{
			{ID: "vm", ResourceType: domain.ResourceTypeVirtualMachine, Count: 4, UsagePercentage: 20},
			{ResourceType: domain.ResourceTypeStorage, Count: 9},
			{ID: "db", ResourceType: domain.ResourceTypeDatabase, Count: 1, UsagePercentage: 90},
		},
	}

	m.generator.EXPECT().
		Generate(ctx, systemPrompt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
			assert.Contains(t, prompt, "Azure account")
			assert.Contains(t, prompt, "Cost data:")
			assert.Contains(t, prompt, "Resource data:")
			return "1. Shut down idle VMs\nPriority: high", nil
		})
	m.recommendations.EXPECT().ReplaceForUserProvider(ctx, "user-1", domain.ProviderAzure, gomock.Len(1)).Return(nil)

	result, err := service.GenerateFromAnalysis(ctx, "user-1", domain.ProviderAzure, input)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []string{"vm", "db"}, result[0].ResourceIDs)
	assert.Equal(t, domain.PriorityHigh, result[0].Priority)
}

func TestService_GenerateFromAnalysisFallsBackToStoredData(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	m.resources.EXPECT().ListByUserAndProvider(ctx, "user-1", domain.ProviderGCP).Return([]*domain.ResourceSummary{
		{ID: "sum-1", ResourceType: domain.ResourceTypeDatabase, Count: 2, UsagePercentage: 50},
	}, nil)
	m.costs.EXPECT().GetLatest(ctx, "user-1", domain.ProviderGCP).Return(&domain.CostSnapshot{
		CostData: domain.CostSeries{Currency: "USD", TimeSeries: []domain.CostPoint{{Date: "2024-01-01", Cost: 3}}},
	}, nil)
	m.generator.EXPECT().
		Generate(ctx, systemPrompt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, prompt string) (string, error) {
			assert.Contains(t, prompt, `"timeSeries"`)
			assert.Contains(t, prompt, `"resource_type": "databases"`)
			return "No changes needed.", nil
		})
	m.recommendations.EXPECT().ReplaceForUserProvider(ctx, "user-1", domain.ProviderGCP, gomock.Len(0)).Return(nil)

	result, err := service.GenerateFromAnalysis(ctx, "user-1", domain.ProviderGCP, domain.AnalysisInput{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestService_GenerateFromAnalysisWithoutData(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	m.resources.EXPECT().ListByUserAndProvider(ctx, "user-1", domain.ProviderAWS).Return(nil, nil)
	m.costs.EXPECT().GetLatest(ctx, "user-1", domain.ProviderAWS).Return(nil, nil)

	_, err := service.GenerateFromAnalysis(ctx, "user-1", domain.ProviderAWS, domain.AnalysisInput{})

	var recErr *RecommendationError
	require.ErrorAs(t, err, &recErr)
	assert.ErrorIs(t, err, ErrNoAnalysisData)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, recErr.Code)
}

func TestService_ListRecommendations(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()
	provider := domain.ProviderAWS

	m.recommendations.EXPECT().ListByUser(ctx, "user-1", &provider).Return([]*domain.Recommendation{{ID: "r1"}}, nil)

	result, err := service.ListRecommendations(ctx, "user-1", &provider)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	m.recommendations.EXPECT().ListByUser(ctx, "user-1", nil).Return(nil, errors.New("boom"))

	_, err = service.ListRecommendations(ctx, "user-1", nil)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

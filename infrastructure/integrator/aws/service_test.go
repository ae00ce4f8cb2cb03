package aws

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws/awsclient/mocks"
	awsdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws/domain"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var testCreds = domain.Credentials{AccessKeyID: "AKIA", SecretAccessKey: "secret", Region: "us-west-2"}

func TestIntegrator_CollectResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().DescribeInstances(gomock.Any(), testCreds).Return([]awsdomain.Instance{
		{ID: "i-1", State: "running"},
		{ID: "i-2", State: "stopped"},
		{ID: "i-3", State: "running"},
	}, nil)
	client.EXPECT().DescribeDBInstances(gomock.Any(), testCreds).Return([]awsdomain.DBInstance{
		{ID: "db-1", Status: "available"},
	}, nil)
	client.EXPECT().ListBuckets(gomock.Any(), testCreds).Return([]awsdomain.Bucket{{Name: "a"}, {Name: "b"}}, nil)

	summaries, err := integrator.CollectResources(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, domain.ResourceTypeVirtualMachine, summaries[0].ResourceType)
	assert.Equal(t, 3, summaries[0].Count)
	assert.Equal(t, 66.67, summaries[0].UsagePercentage)

	assert.Equal(t, 1, summaries[1].Count)
	assert.Equal(t, 100.0, summaries[1].UsagePercentage)

	assert.Equal(t, 2, summaries[2].Count)
	assert.Equal(t, 0.0, summaries[2].UsagePercentage)
	for _, summary := range summaries {
		assert.Equal(t, domain.ProviderAWS, summary.Provider)
	}
}

func TestIntegrator_CollectResourcesEmptyAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().DescribeInstances(gomock.Any(), gomock.Any()).Return(nil, nil)
	client.EXPECT().DescribeDBInstances(gomock.Any(), gomock.Any()).Return(nil, nil)
	client.EXPECT().ListBuckets(gomock.Any(), gomock.Any()).Return(nil, nil)

	summaries, err := New(client).CollectResources(context.Background(), testCreds)
	require.NoError(t, err)
	for _, summary := range summaries {
		assert.Zero(t, summary.Count)
		assert.Zero(t, summary.UsagePercentage)
	}
}

func TestIntegrator_CollectResourcesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rejected := &utils.HTTPError{Service: "aws ec2", StatusCode: http.StatusForbidden, Status: "403 Forbidden"}

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().DescribeInstances(gomock.Any(), gomock.Any()).Return(nil, rejected)

	_, err := New(client).CollectResources(context.Background(), testCreds)
	assert.ErrorIs(t, err, rejected)
}

func TestIntegrator_FetchCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	period := domain.CostPeriod{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetDailyCosts(gomock.Any(), testCreds, period).Return([]awsdomain.DailyCost{
		{Date: "2024-01-02", Amount: 7.119, Unit: "USD"},
		{Date: "2024-01-01", Amount: 2.5, Unit: "USD"},
	}, nil)

	series, err := New(client).FetchCosts(context.Background(), testCreds, period)
	require.NoError(t, err)

	assert.Equal(t, "USD", series.Currency)
	assert.Equal(t, []domain.CostPoint{
		{Date: "2024-01-01", Cost: 2.5},
		{Date: "2024-01-02", Cost: 7.12},
	}, series.TimeSeries)
	assert.InDelta(t, 9.62, series.Total(), 0.0001)
}

func TestIntegrator_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListBuckets(gomock.Any(), testCreds).Return([]awsdomain.Bucket{}, nil)

	assert.NoError(t, New(client).Validate(context.Background(), testCreds))
	assert.Equal(t, domain.ProviderAWS, New(client).Provider())
}

package aws

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws/awsclient"
	awsdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws/domain"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

type Integrator struct {
	client awsclient.Client
}

func New(client awsclient.Client) integrator.CloudIntegrator {
	return &Integrator{client: client}
}

func (i *Integrator) Provider() domain.Provider {
	return domain.ProviderAWS
}

func (i *Integrator) Validate(ctx context.Context, creds domain.Credentials) error {
	_, err := i.client.ListBuckets(ctx, creds)
	return err
}

func (i *Integrator) CollectResources(ctx context.Context, creds domain.Credentials) ([]*domain.ResourceSummary, error) {
	instances, err := i.client.DescribeInstances(ctx, creds)
	if err != nil {
		return nil, err
	}

	databases, err := i.client.DescribeDBInstances(ctx, creds)
	if err != nil {
		return nil, err
	}

	buckets, err := i.client.ListBuckets(ctx, creds)
	if err != nil {
		return nil, err
	}

	running := 0
	for _, instance := range instances {
		if instance.State == awsdomain.InstanceStateRunning {
			running++
		}
	}

	available := 0
	for _, database := range databases {
		if database.Status == awsdomain.DBStatusAvailable {
			available++
		}
	}

	logrus.WithFields(logrus.Fields{
		"region":    creds.Region,
		"instances": len(instances),
		"databases": len(databases),
		"buckets":   len(buckets),
	}).Info("AWS resource scan finished")

	return []*domain.ResourceSummary{
		{
			Provider:        domain.ProviderAWS,
			ResourceType:    domain.ResourceTypeVirtualMachine,
			Count:           len(instances),
			UsagePercentage: utils.Percentage(running, len(instances)),
		},
		{
			Provider:        domain.ProviderAWS,
			ResourceType:    domain.ResourceTypeDatabase,
			Count:           len(databases),
			UsagePercentage: utils.Percentage(available, len(databases)),
		},
		{
			Provider:     domain.ProviderAWS,
			ResourceType: domain.ResourceTypeStorage,
			Count:        len(buckets),
		},
	}, nil
}

func (i *Integrator) FetchCosts(ctx context.Context, creds domain.Credentials, period domain.CostPeriod) (*domain.CostSeries, error) {
	costs, err := i.client.GetDailyCosts(ctx, creds, period)
	if err != nil {
		return nil, err
	}

	series := &domain.CostSeries{Currency: "USD", TimeSeries: make([]domain.CostPoint, 0, len(costs))}
	for _, cost := range costs {
		if cost.Date == "" {
			continue
		}
		series.Currency = cost.Unit
		series.TimeSeries = append(series.TimeSeries, domain.CostPoint{
			Date: cost.Date,
			Cost: utils.RoundWithTwoDecimalPlace(cost.Amount),
		})
	}

	sort.Slice(series.TimeSeries, func(a, b int) bool {
		return series.TimeSeries[a].Date < series.TimeSeries[b].Date
	})

	return series, nil
}

package gcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp/gcpclient"
	gcpdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp/domain"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var ErrMissingBillingTable = fmt.Errorf("%w: gcp: billing_table is required to fetch costs", integrator.ErrInvalidCredentials)

const (
	instanceRunning    = "RUNNING"
	sqlInstanceRunning = "RUNNABLE"
)

type Integrator struct {
	client gcpclient.Client
}

func New(client gcpclient.Client) integrator.CloudIntegrator {
	return &Integrator{client: client}
}

func (i *Integrator) Provider() domain.Provider {
	return domain.ProviderGCP
}

func (i *Integrator) Validate(ctx context.Context, creds domain.Credentials) error {
	token, err := i.client.Token(ctx, creds)
	if err != nil {
		return err
	}

	_, err = i.client.ListBuckets(ctx, token, creds.ProjectID)
	return err
}

func (i *Integrator) CollectResources(ctx context.Context, creds domain.Credentials) ([]*domain.ResourceSummary, error) {
	token, err := i.client.Token(ctx, creds)
	if err != nil {
		return nil, err
	}

	instances, err := i.client.ListInstances(ctx, token, creds.ProjectID)
	if err != nil {
		return nil, err
	}

	databases, err := i.client.ListSQLInstances(ctx, token, creds.ProjectID)
	if err != nil {
		return nil, err
	}

	buckets, err := i.client.ListBuckets(ctx, token, creds.ProjectID)
	if err != nil {
		return nil, err
	}

	runningInstances := 0
	for _, instance := range instances {
		if instance.Status == instanceRunning {
			runningInstances++
		}
	}

	runningDatabases := 0
	for _, database := range databases {
		if database.State == sqlInstanceRunning {
			runningDatabases++
		}
	}

	logrus.WithFields(logrus.Fields{
		"project_id": creds.ProjectID,
		"instances":  len(instances),
		"databases":  len(databases),
		"buckets":    len(buckets),
	}).Info("GCP resource scan finished")

	return []*domain.ResourceSummary{
		{
			Provider:        domain.ProviderGCP,
			ResourceType:    domain.ResourceTypeVirtualMachine,
			Count:           len(instances),
			UsagePercentage: utils.Percentage(runningInstances, len(instances)),
		},
		{
			Provider:        domain.ProviderGCP,
			ResourceType:    domain.ResourceTypeDatabase,
			Count:           len(databases),
			UsagePercentage: utils.Percentage(runningDatabases, len(databases)),
		},
		{
			Provider:     domain.ProviderGCP,
			ResourceType: domain.ResourceTypeStorage,
			Count:        len(buckets),
		},
	}, nil
}

func (i *Integrator) FetchCosts(ctx context.Context, creds domain.Credentials, period domain.CostPeriod) (*domain.CostSeries, error) {
	if creds.BillingTable == "" {
		return nil, ErrMissingBillingTable
	}

	token, err := i.client.Token(ctx, creds)
	if err != nil {
		return nil, err
	}

	rows, err := i.client.QueryDailyCosts(ctx, token, creds.ProjectID, creds.BillingTable, period)
	if err != nil {
		return nil, err
	}

	return toCostSeries(rows)
}

// toCostSeries reads (day, cost, currency) rows. The query already groups and
// orders by day.
func toCostSeries(rows []gcpdomain.QueryRow) (*domain.CostSeries, error) {
	series := &domain.CostSeries{Currency: "USD", TimeSeries: make([]domain.CostPoint, 0, len(rows))}

	for _, row := range rows {
		if len(row.F) < 2 {
			continue
		}

		date, ok := row.F[0].V.(string)
		if !ok || date == "" {
			return nil, fmt.Errorf("gcp: invalid usage day %v", row.F[0].V)
		}

		cost, err := cellFloat(row.F[1].V)
		if err != nil {
			return nil, err
		}

		if len(row.F) > 2 {
			if currency, ok := row.F[2].V.(string); ok && currency != "" {
				series.Currency = currency
			}
		}

		series.TimeSeries = append(series.TimeSeries, domain.CostPoint{
			Date: date,
			Cost: utils.RoundWithTwoDecimalPlace(cost),
		})
	}

	return series, nil
}

// cellFloat decodes a BigQuery cell, which the REST API returns as a string.
func cellFloat(value any) (float64, error) {
	switch v := value.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "gcp: invalid cost %q", v)
		}
		return f, nil
	case float64:
		return v, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("gcp: invalid cost %v", value)
	}
}

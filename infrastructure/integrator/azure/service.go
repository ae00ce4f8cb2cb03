package azure

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/azure/azureclient"
	azuredomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/azure/domain"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var resourceTypes = map[string]domain.ResourceType{
	"microsoft.compute/virtualmachines":         domain.ResourceTypeVirtualMachine,
	"microsoft.sql/servers/databases":           domain.ResourceTypeDatabase,
	"microsoft.dbforpostgresql/servers":         domain.ResourceTypeDatabase,
	"microsoft.dbforpostgresql/flexibleservers": domain.ResourceTypeDatabase,
	"microsoft.dbformysql/servers":              domain.ResourceTypeDatabase,
	"microsoft.dbformysql/flexibleservers":      domain.ResourceTypeDatabase,
	"microsoft.documentdb/databaseaccounts":     domain.ResourceTypeDatabase,
	"microsoft.storage/storageaccounts":         domain.ResourceTypeStorage,
}

type Integrator struct {
	client azureclient.Client
}

func New(client azureclient.Client) integrator.CloudIntegrator {
	return &Integrator{client: client}
}

func (i *Integrator) Provider() domain.Provider {
	return domain.ProviderAzure
}

func (i *Integrator) Validate(ctx context.Context, creds domain.Credentials) error {
	token, err := i.client.Token(ctx, creds)
	if err != nil {
		return err
	}

	_, err = i.client.ListResourceGroups(ctx, token, creds.SubscriptionID)
	return err
}

// CollectResources scans every resource group of the subscription. A group that
// fails to list is logged and skipped.
func (i *Integrator) CollectResources(ctx context.Context, creds domain.Credentials) ([]*domain.ResourceSummary, error) {
	token, err := i.client.Token(ctx, creds)
	if err != nil {
		return nil, err
	}

	groups, err := i.client.ListResourceGroups(ctx, token, creds.SubscriptionID)
	if err != nil {
		return nil, err
	}

	counts := map[domain.ResourceType]int{
		domain.ResourceTypeVirtualMachine: 0,
		domain.ResourceTypeDatabase:       0,
		domain.ResourceTypeStorage:        0,
	}

	skipped := 0
	for _, group := range groups {
		resources, err := i.client.ListResourcesByGroup(ctx, token, creds.SubscriptionID, group.Name)
		if err != nil {
			skipped++
			logrus.WithFields(logrus.Fields{
				"subscription_id": creds.SubscriptionID,
				"resource_group":  group.Name,
			}).WithError(err).Warn("Skipping Azure resource group")
			continue
		}

		for _, resource := range resources {
			if resourceType, ok := resourceTypes[strings.ToLower(resource.Type)]; ok {
				counts[resourceType]++
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"subscription_id": creds.SubscriptionID,
		"resource_groups": len(groups),
		"skipped_groups":  skipped,
	}).Info("Azure resource scan finished")

	return []*domain.ResourceSummary{
		{Provider: domain.ProviderAzure, ResourceType: domain.ResourceTypeVirtualMachine, Count: counts[domain.ResourceTypeVirtualMachine]},
		{Provider: domain.ProviderAzure, ResourceType: domain.ResourceTypeDatabase, Count: counts[domain.ResourceTypeDatabase]},
		{Provider: domain.ProviderAzure, ResourceType: domain.ResourceTypeStorage, Count: counts[domain.ResourceTypeStorage]},
	}, nil
}

func (i *Integrator) FetchCosts(ctx context.Context, creds domain.Credentials, period domain.CostPeriod) (*domain.CostSeries, error) {
	token, err := i.client.Token(ctx, creds)
	if err != nil {
		return nil, err
	}

	result, err := i.client.QueryCosts(ctx, token, creds.SubscriptionID, period)
	if err != nil {
		return nil, err
	}

	return toCostSeries(result)
}

// toCostSeries maps the Cost/UsageDate/Currency columns into a daily series.
func toCostSeries(result *azuredomain.CostQueryResult) (*domain.CostSeries, error) {
	costIdx := result.ColumnIndex("Cost")
	if costIdx < 0 {
		costIdx = result.ColumnIndex("PreTaxCost")
	}
	dateIdx := result.ColumnIndex("UsageDate")
	currencyIdx := result.ColumnIndex("Currency")

	if costIdx < 0 || dateIdx < 0 {
		return nil, errors.New("azure: cost query result without Cost/UsageDate columns")
	}

	byDate := make(map[string]float64)
	series := &domain.CostSeries{Currency: "USD"}

	for _, row := range result.Properties.Rows {
		if len(row) <= costIdx || len(row) <= dateIdx {
			continue
		}

		cost, ok := row[costIdx].(float64)
		if !ok {
			continue
		}

		date, err := usageDate(row[dateIdx])
		if err != nil {
			return nil, err
		}

		if currencyIdx >= 0 && len(row) > currencyIdx {
			if currency, ok := row[currencyIdx].(string); ok && currency != "" {
				series.Currency = currency
			}
		}

		byDate[date] += cost
	}

	for date, cost := range byDate {
		series.TimeSeries = append(series.TimeSeries, domain.CostPoint{Date: date, Cost: utils.RoundWithTwoDecimalPlace(cost)})
	}
	sort.Slice(series.TimeSeries, func(a, b int) bool {
		return series.TimeSeries[a].Date < series.TimeSeries[b].Date
	})

	return series, nil
}

// usageDate accepts the numeric yyyymmdd form and the ISO string form.
func usageDate(value any) (string, error) {
	switch v := value.(type) {
	case float64:
		raw := strconv.FormatInt(int64(math.Round(v)), 10)
		t, err := time.Parse("20060102", raw)
		if err != nil {
			return "", fmt.Errorf("azure: invalid usage date %v", v)
		}
		return t.Format(time.DateOnly), nil
	case string:
		if len(v) >= 10 {
			if t, err := time.Parse(time.DateOnly, v[:10]); err == nil {
				return t.Format(time.DateOnly), nil
			}
		}
		if t, err := time.Parse("20060102", v); err == nil {
			return t.Format(time.DateOnly), nil
		}
		return "", fmt.Errorf("azure: invalid usage date %q", v)
	default:
		return "", fmt.Errorf("azure: invalid usage date %v", value)
	}
}

package azureclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	azuredomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/azure/domain"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceName              = "azure"
	resourcesAPIVersion      = "2021-04-01"
	costManagementAPIVersion = "2023-03-01"
)

type Client interface {
	Token(ctx context.Context, creds domain.Credentials) (string, error)
	ListResourceGroups(ctx context.Context, token, subscriptionID string) ([]azuredomain.ResourceGroup, error)
	ListResourcesByGroup(ctx context.Context, token, subscriptionID, group string) ([]azuredomain.Resource, error)
	QueryCosts(ctx context.Context, token, subscriptionID string, period domain.CostPeriod) (*azuredomain.CostQueryResult, error)
}

type AzureClient struct {
	cfg        config.Azure
	httpClient *http.Client
}

func NewClient(cfg config.Azure) Client {
	return &AzureClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Token runs the client credentials flow against the tenant.
func (c *AzureClient) Token(ctx context.Context, creds domain.Credentials) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("scope", strings.TrimRight(c.cfg.ManagementURL, "/")+"/.default")

	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimRight(c.cfg.LoginURL, "/"), url.PathEscape(creds.TenantID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "azure: build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token azuredomain.TokenResponse
	if err := c.do(req, &token); err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			var tokenErr azuredomain.TokenErrorResponse
			if json.Unmarshal([]byte(httpErr.Body), &tokenErr) == nil && tokenErr.Error != "" {
				httpErr.Body = tokenErr.Error + ": " + firstLine(tokenErr.ErrorDescription)
			}
		}
		return "", err
	}

	if token.AccessToken == "" {
		return "", errors.New("azure: token response without access_token")
	}

	return token.AccessToken, nil
}

func (c *AzureClient) ListResourceGroups(ctx context.Context, token, subscriptionID string) ([]azuredomain.ResourceGroup, error) {
	endpoint := fmt.Sprintf("%s/subscriptions/%s/resourcegroups?api-version=%s",
		strings.TrimRight(c.cfg.ManagementURL, "/"), url.PathEscape(subscriptionID), resourcesAPIVersion)

	var list azuredomain.ResourceGroupList
	if err := c.get(ctx, token, endpoint, &list); err != nil {
		return nil, errors.Wrap(err, "azure: list resource groups")
	}

	return list.Value, nil
}

func (c *AzureClient) ListResourcesByGroup(ctx context.Context, token, subscriptionID, group string) ([]azuredomain.Resource, error) {
	endpoint := fmt.Sprintf("%s/subscriptions/%s/resourceGroups/%s/resources?api-version=%s",
		strings.TrimRight(c.cfg.ManagementURL, "/"), url.PathEscape(subscriptionID), url.PathEscape(group), resourcesAPIVersion)

	var list azuredomain.ResourceList
	if err := c.get(ctx, token, endpoint, &list); err != nil {
		return nil, errors.Wrapf(err, "azure: list resources of group %s", group)
	}

	return list.Value, nil
}

// QueryCosts asks Cost Management for the daily actual cost of the subscription.
func (c *AzureClient) QueryCosts(ctx context.Context, token, subscriptionID string, period domain.CostPeriod) (*azuredomain.CostQueryResult, error) {
	endpoint := fmt.Sprintf("%s/subscriptions/%s/providers/Microsoft.CostManagement/query?api-version=%s",
		strings.TrimRight(c.cfg.ManagementURL, "/"), url.PathEscape(subscriptionID), costManagementAPIVersion)

	query := azuredomain.CostQueryRequest{
		Type:      "ActualCost",
		Timeframe: "Custom",
		TimePeriod: azuredomain.CostTimePeriod{
			From: period.Start.Format("2006-01-02T00:00:00Z"),
			To:   period.End.Format("2006-01-02T23:59:59Z"),
		},
		Dataset: azuredomain.CostQueryDataset{
			Granularity: "Daily",
			Aggregation: map[string]azuredomain.CostQueryAggregation{
				"totalCost": {Name: "Cost", Function: "Sum"},
			},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Wrap(err, "azure: encode cost query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "azure: build cost query request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	var result azuredomain.CostQueryResult
	if err := c.do(req, &result); err != nil {
		return nil, errors.Wrap(err, "azure: query costs")
	}

	return &result, nil
}

func (c *AzureClient) get(ctx context.Context, token, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req, out)
}

func (c *AzureClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := utils.ReadResponse(serviceName, resp)
	if err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			var armErr azuredomain.ErrorResponse
			if json.Unmarshal([]byte(httpErr.Body), &armErr) == nil && armErr.Error.Message != "" {
				httpErr.Body = armErr.Error.Code + ": " + armErr.Error.Message
			}
		}
		return err
	}

	if err := json.NewDecoder(bytes.NewReader(data)).Decode(out); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

package gcpclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	gcpdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp/domain"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceName = "gcp"
	scope       = "https://www.googleapis.com/auth/cloud-platform"
	jwtBearer   = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

var (
	ErrInvalidServiceAccountKey = fmt.Errorf("%w: gcp: invalid service account key", integrator.ErrInvalidCredentials)
	ErrInvalidBillingTable      = fmt.Errorf("%w: gcp: billing table must look like project.dataset.table", integrator.ErrInvalidCredentials)

	billingTablePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+){1,2}$`)
)

type Client interface {
	Token(ctx context.Context, creds domain.Credentials) (string, error)
	ListInstances(ctx context.Context, token, projectID string) ([]gcpdomain.Instance, error)
	ListSQLInstances(ctx context.Context, token, projectID string) ([]gcpdomain.SQLInstance, error)
	ListBuckets(ctx context.Context, token, projectID string) ([]gcpdomain.Bucket, error)
	QueryDailyCosts(ctx context.Context, token, projectID, billingTable string, period domain.CostPeriod) ([]gcpdomain.QueryRow, error)
}

type GCPClient struct {
	cfg        config.GCP
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg config.GCP) Client {
	return &GCPClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
	}
}

// Token exchanges a self-signed service account assertion for an access token.
func (c *GCPClient) Token(ctx context.Context, creds domain.Credentials) (string, error) {
	var key gcpdomain.ServiceAccountKey
	if err := json.Unmarshal([]byte(creds.ServiceAccountKey), &key); err != nil {
		return "", errors.Wrap(ErrInvalidServiceAccountKey, err.Error())
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return "", ErrInvalidServiceAccountKey
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey))
	if err != nil {
		return "", errors.Wrap(ErrInvalidServiceAccountKey, err.Error())
	}

	now := c.now()
	assertion := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   key.ClientEmail,
		"scope": scope,
		"aud":   c.cfg.TokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	if key.PrivateKeyID != "" {
		assertion.Header["kid"] = key.PrivateKeyID
	}

	signed, err := assertion.SignedString(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "gcp: sign assertion")
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearer)
	form.Set("assertion", signed)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "gcp: build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token gcpdomain.TokenResponse
	if err := c.do(req, &token); err != nil {
		return "", errors.Wrap(err, "gcp: token exchange")
	}
	if token.AccessToken == "" {
		return "", errors.New("gcp: token response without access_token")
	}

	return token.AccessToken, nil
}

func (c *GCPClient) ListInstances(ctx context.Context, token, projectID string) ([]gcpdomain.Instance, error) {
	endpoint := fmt.Sprintf("%s/projects/%s/aggregated/instances", strings.TrimRight(c.cfg.ComputeURL, "/"), url.PathEscape(projectID))

	var list gcpdomain.InstanceAggregatedList
	if err := c.get(ctx, token, endpoint, &list); err != nil {
		return nil, errors.Wrap(err, "gcp: list instances")
	}

	instances := make([]gcpdomain.Instance, 0)
	for _, scoped := range list.Items {
		instances = append(instances, scoped.Instances...)
	}

	return instances, nil
}

func (c *GCPClient) ListSQLInstances(ctx context.Context, token, projectID string) ([]gcpdomain.SQLInstance, error) {
	endpoint := fmt.Sprintf("%s/projects/%s/instances", strings.TrimRight(c.cfg.SQLAdminURL, "/"), url.PathEscape(projectID))

	var list gcpdomain.SQLInstanceList
	if err := c.get(ctx, token, endpoint, &list); err != nil {
		return nil, errors.Wrap(err, "gcp: list sql instances")
	}

	return list.Items, nil
}

func (c *GCPClient) ListBuckets(ctx context.Context, token, projectID string) ([]gcpdomain.Bucket, error) {
	endpoint := fmt.Sprintf("%s/b?project=%s", strings.TrimRight(c.cfg.StorageURL, "/"), url.QueryEscape(projectID))

	var list gcpdomain.BucketList
	if err := c.get(ctx, token, endpoint, &list); err != nil {
		return nil, errors.Wrap(err, "gcp: list buckets")
	}

	return list.Items, nil
}

// QueryDailyCosts aggregates the billing export table per usage day. Rows are
// (day, cost, currency).
func (c *GCPClient) QueryDailyCosts(ctx context.Context, token, projectID, billingTable string, period domain.CostPeriod) ([]gcpdomain.QueryRow, error) {
	if !billingTablePattern.MatchString(billingTable) {
		return nil, ErrInvalidBillingTable
	}

	query := fmt.Sprintf(
		"SELECT FORMAT_DATE('%%F', DATE(usage_start_time)) AS day, SUM(cost) AS cost, ANY_VALUE(currency) AS currency "+
			"FROM `%s` WHERE DATE(usage_start_time) BETWEEN DATE '%s' AND DATE '%s' "+
			"GROUP BY day ORDER BY day",
		billingTable,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
	)

	body, err := json.Marshal(gcpdomain.QueryRequest{Query: query, UseLegacySQL: false, TimeoutMs: 30000})
	if err != nil {
		return nil, errors.Wrap(err, "gcp: encode query")
	}

	endpoint := fmt.Sprintf("%s/projects/%s/queries", strings.TrimRight(c.cfg.BigQueryURL, "/"), url.PathEscape(projectID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "gcp: build query request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	var response gcpdomain.QueryResponse
	if err := c.do(req, &response); err != nil {
		return nil, errors.Wrap(err, "gcp: query billing export")
	}
	if !response.JobComplete {
		return nil, errors.New("gcp: billing query did not complete in time")
	}

	return response.Rows, nil
}

func (c *GCPClient) get(ctx context.Context, token, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req, out)
}

func (c *GCPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := utils.ReadResponse(serviceName, resp)
	if err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			var apiErr gcpdomain.ErrorResponse
			if json.Unmarshal([]byte(httpErr.Body), &apiErr) == nil && apiErr.Error.Message != "" {
				httpErr.Body = apiErr.Error.Message
			}
		}
		return err
	}

	if len(data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(data, out), "decode response")
}

package gcp

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp/gcpclient"
	gcpdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp/domain"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

func newServiceAccount(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	raw, err := jsoniter.Marshal(gcpdomain.ServiceAccountKey{
		Type:         "service_account",
		ProjectID:    "proj-1",
		PrivateKeyID: "kid-1",
		PrivateKey:   string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		ClientEmail:  "cost-reader@proj-1.iam.gserviceaccount.com",
	})
	require.NoError(t, err)

	return key, string(raw)
}

func newTestServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.PostForm.Get("grant_type"))

		token, err := jwt.Parse(r.PostForm.Get("assertion"), func(token *jwt.Token) (interface{}, error) {
			assert.Equal(t, "kid-1", token.Header["kid"])
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithAudience(server.URL+"/token"))
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		issuer, _ := token.Claims.GetIssuer()
		assert.Equal(t, "cost-reader@proj-1.iam.gserviceaccount.com", issuer)

		_, _ = w.Write([]byte(`{"access_token":"gtok","expires_in":3599,"token_type":"Bearer"}`))
	})

	mux.HandleFunc("/compute/projects/proj-1/aggregated/instances", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gtok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"items":{
			"zones/us-central1-a":{"instances":[{"name":"a","status":"RUNNING"},{"name":"b","status":"TERMINATED"}]},
			"zones/us-east1-b":{"instances":[{"name":"c","status":"RUNNING"},{"name":"d","status":"RUNNING"}]},
			"zones/europe-west1-c":{"warning":{"code":"NO_RESULTS_ON_PAGE"}}
		}}`))
	})

	mux.HandleFunc("/sql/projects/proj-1/instances", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"name":"pg","state":"RUNNABLE"},{"name":"old","state":"SUSPENDED"}]}`))
	})

	mux.HandleFunc("/storage/b", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "proj-1", r.URL.Query().Get("project"))
		_, _ = w.Write([]byte(`{"items":[{"name":"logs"},{"name":"backups"},{"name":"assets"}]}`))
	})

	mux.HandleFunc("/bq/projects/proj-1/queries", func(w http.ResponseWriter, r *http.Request) {
		var request gcpdomain.QueryRequest
		assert.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&request))
		assert.Contains(t, request.Query, "FROM `proj-1.billing.gcp_billing_export_v1`")
		assert.Contains(t, request.Query, "DATE '2024-01-01' AND DATE '2024-01-31'")
		assert.False(t, request.UseLegacySQL)

		_, _ = w.Write([]byte(`{"jobComplete":true,"rows":[
			{"f":[{"v":"2024-01-01"},{"v":"3.456"},{"v":"USD"}]},
			{"f":[{"v":"2024-01-02"},{"v":"1.5"},{"v":"USD"}]}
		]}`))
	})

	server = httptest.NewServer(mux)
	return server
}

func newTestIntegrator(server *httptest.Server) *Integrator {
	client := gcpclient.NewClient(config.GCP{
		TokenURL:    server.URL + "/token",
		ComputeURL:  server.URL + "/compute",
		SQLAdminURL: server.URL + "/sql",
		StorageURL:  server.URL + "/storage",
		BigQueryURL: server.URL + "/bq",
		Timeout:     5 * time.Second,
	})

	return &Integrator{client: client}
}

func TestIntegrator_CollectResources(t *testing.T) {
	key, serviceAccount := newServiceAccount(t)
	server := newTestServer(t, key)
	defer server.Close()

	creds := domain.Credentials{ProjectID: "proj-1", ServiceAccountKey: serviceAccount}

	summaries, err := newTestIntegrator(server).CollectResources(context.Background(), creds)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, domain.ResourceTypeVirtualMachine, summaries[0].ResourceType)
	assert.Equal(t, 4, summaries[0].Count)
	assert.Equal(t, 75.0, summaries[0].UsagePercentage)

	assert.Equal(t, domain.ResourceTypeDatabase, summaries[1].ResourceType)
	assert.Equal(t, 2, summaries[1].Count)
	assert.Equal(t, 50.0, summaries[1].UsagePercentage)

	assert.Equal(t, domain.ResourceTypeStorage, summaries[2].ResourceType)
	assert.Equal(t, 3, summaries[2].Count)
}

func TestIntegrator_FetchCosts(t *testing.T) {
	key, serviceAccount := newServiceAccount(t)
	server := newTestServer(t, key)
	defer server.Close()

	creds := domain.Credentials{
		ProjectID:         "proj-1",
		ServiceAccountKey: serviceAccount,
		BillingTable:      "proj-1.billing.gcp_billing_export_v1",
	}
	period := domain.CostPeriod{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	series, err := newTestIntegrator(server).FetchCosts(context.Background(), creds, period)
	require.NoError(t, err)

	assert.Equal(t, "USD", series.Currency)
	assert.Equal(t, []domain.CostPoint{
		{Date: "2024-01-01", Cost: 3.46},
		{Date: "2024-01-02", Cost: 1.5},
	}, series.TimeSeries)
}

func TestIntegrator_FetchCostsWithoutBillingTable(t *testing.T) {
	i := &Integrator{}

	_, err := i.FetchCosts(context.Background(), domain.Credentials{ProjectID: "proj-1"}, domain.CostPeriod{})
	assert.ErrorIs(t, err, ErrMissingBillingTable)
}

func TestIntegrator_FetchCostsRejectsInjectedTable(t *testing.T) {
	key, serviceAccount := newServiceAccount(t)
	server := newTestServer(t, key)
	defer server.Close()

	creds := domain.Credentials{
		ProjectID:         "proj-1",
		ServiceAccountKey: serviceAccount,
		BillingTable:      "proj.billing` WHERE 1=1; --",
	}

	_, err := newTestIntegrator(server).FetchCosts(context.Background(), creds, domain.CostPeriod{})
	assert.ErrorIs(t, err, gcpclient.ErrInvalidBillingTable)
}

func TestIntegrator_ValidateWithInvalidKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	err := newTestIntegrator(server).Validate(context.Background(), domain.Credentials{
		ProjectID:         "proj-1",
		ServiceAccountKey: `{"client_email":"x@y","private_key":"not a pem"}`,
	})
	assert.ErrorIs(t, err, gcpclient.ErrInvalidServiceAccountKey)
}

func TestIntegrator_ValidateForbidden(t *testing.T) {
	_, serviceAccount := newServiceAccount(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"gtok"}`))
	})
	mux.HandleFunc("/storage/b", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"caller does not have storage.buckets.list access","status":"PERMISSION_DENIED"}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	err := newTestIntegrator(server).Validate(context.Background(), domain.Credentials{
		ProjectID:         "proj-1",
		ServiceAccountKey: serviceAccount,
	})

	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.True(t, httpErr.IsClientError())
	assert.Equal(t, "caller does not have storage.buckets.list access", httpErr.Body)
}

func TestToCostSeries(t *testing.T) {
	t.Run("empty rows", func(t *testing.T) {
		series, err := toCostSeries(nil)
		require.NoError(t, err)
		assert.Equal(t, "USD", series.Currency)
		assert.Empty(t, series.TimeSeries)
	})

	t.Run("invalid cost", func(t *testing.T) {
		_, err := toCostSeries([]gcpdomain.QueryRow{{F: []gcpdomain.QueryCell{{V: "2024-01-01"}, {V: "abc"}}}})
		assert.Error(t, err)
	})

	t.Run("null cost counts as zero", func(t *testing.T) {
		series, err := toCostSeries([]gcpdomain.QueryRow{{F: []gcpdomain.QueryCell{{V: "2024-01-01"}, {V: nil}, {V: "BRL"}}}})
		require.NoError(t, err)
		assert.Equal(t, "BRL", series.Currency)
		assert.Equal(t, 0.0, series.TimeSeries[0].Cost)
	})
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	authmocks "github.com/vfg2006/cloud-cost-api/internal/usecases/authenticating/mocks"
	collectingmocks "github.com/vfg2006/cloud-cost-api/internal/usecases/collecting/mocks"
	connectingmocks "github.com/vfg2006/cloud-cost-api/internal/usecases/connecting/mocks"
	recommendingmocks "github.com/vfg2006/cloud-cost-api/internal/usecases/recommending/mocks"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*Server, *authmocks.MockAuthenticator, *connectingmocks.MockConnectionService) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	connections := connectingmocks.NewMockConnectionService(ctrl)

	cfg := &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:3000"},
			RateLimit:      1,
			RateLimitBurst: 1,
		},
	}

	srv, err := New(cfg, Services{
		Authenticator: authenticator,
		Connections:   connections,
		Collector:     collectingmocks.NewMockCollector(ctrl),
		Recommender:   recommendingmocks.NewMockRecommender(ctrl),
	})
	require.NoError(t, err)

	return srv, authenticator, connections
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, path := range []string{"/healthcheck", "/metrics"} {
		rec := httptest.NewRecorder()
		srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"), path)
	}
}

func TestServer_RequiresToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/connections", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AuthenticatedRequestReachesHandler(t *testing.T) {
	srv, authenticator, connections := newTestServer(t)

	claims := &domain.Claims{Role: domain.RoleAuthenticated}
	claims.Subject = "user-1"
	authenticator.EXPECT().ValidateToken("token").Return(claims, nil)
	connections.EXPECT().ListConnections(gomock.Any(), "user-1").Return([]*domain.CloudConnection{
		{ID: "c1", UserID: "user-1", Provider: domain.ProviderAWS, Active: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/connections", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"aws"`)
}

func TestServer_CronRoutesAreAdminOnly(t *testing.T) {
	srv, authenticator, _ := newTestServer(t)

	claims := &domain.Claims{Role: domain.RoleAuthenticated}
	claims.Subject = "user-1"
	authenticator.EXPECT().ValidateToken("token").Return(claims, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}

func TestServer_CronStatusRoute(t *testing.T) {
	srv, authenticator, _ := newTestServer(t)

	claims := &domain.Claims{Role: domain.RoleAdmin}
	claims.Subject = "admin-1"
	authenticator.EXPECT().ValidateToken("token").Return(claims, nil).Times(2)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/cron/status/run", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"github.com/vfg2006/cloud-cost-api/pkg/middleware"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

// newRequest builds a request as the router and AuthMiddleware would hand it
// to a handler.
func newRequest(method, target string, body string, params httprouter.Params) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)

	claims := &domain.Claims{Role: domain.RoleAuthenticated}
	claims.Subject = "user-1"

	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, claims)
	ctx = context.WithValue(ctx, httprouter.ParamsKey, params)
	return req.WithContext(ctx)
}

func providerParams(provider string) httprouter.Params {
	return httprouter.Params{{Key: "provider", Value: provider}}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

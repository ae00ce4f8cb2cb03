package integrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported provider")
	// ErrInvalidCredentials marks credential or account settings rejected
	// before any vendor call.
	ErrInvalidCredentials = errors.New("invalid provider credentials")
)

// CloudIntegrator talks to one vendor's management and billing APIs.
//
//go:generate mockgen -source=cloud.go -destination=mocks/cloud.go -package=mocks
type CloudIntegrator interface {
	Provider() domain.Provider
	// Validate acquires a token and performs a cheap read to prove the credentials work.
	Validate(ctx context.Context, creds domain.Credentials) error
	CollectResources(ctx context.Context, creds domain.Credentials) ([]*domain.ResourceSummary, error)
	FetchCosts(ctx context.Context, creds domain.Credentials, period domain.CostPeriod) (*domain.CostSeries, error)
}

// Registry resolves the integrator of a provider.
type Registry map[domain.Provider]CloudIntegrator

func NewRegistry(integrators ...CloudIntegrator) Registry {
	registry := make(Registry, len(integrators))
	for _, i := range integrators {
		registry[i.Provider()] = i
	}
	return registry
}

func (r Registry) Get(provider domain.Provider) (CloudIntegrator, error) {
	i, ok := r[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
	return i, nil
}

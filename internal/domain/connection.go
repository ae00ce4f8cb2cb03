package domain

import (
	"errors"
	"time"
)

// CloudConnection is a stored credential set for a (user, provider) pair.
type CloudConnection struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Provider    Provider    `json:"provider"`
	Credentials Credentials `json:"-"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Credentials carries the fields collected by the connection wizard. Only the
// fields of the connection's provider are populated.
type Credentials struct {
	AccessKeyID     string `json:"access_key_id,omitempty"`
	SecretAccessKey string `json:"secret_access_key,omitempty"`
	Region          string `json:"region,omitempty"`

	TenantID       string `json:"tenant_id,omitempty"`
	ClientID       string `json:"client_id,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`

	ProjectID         string `json:"project_id,omitempty"`
	ServiceAccountKey string `json:"service_account_key,omitempty"`
	BillingTable      string `json:"billing_table,omitempty"`
}

var (
	ErrMissingAWSCredentials   = errors.New("access_key_id and secret_access_key are required")
	ErrMissingAzureCredentials = errors.New("tenant_id, client_id, client_secret and subscription_id are required")
	ErrMissingGCPCredentials   = errors.New("project_id and service_account_key are required")
)

// Validate checks that the fields required by provider are present.
func (c Credentials) Validate(provider Provider) error {
	switch provider {
	case ProviderAWS:
		if c.AccessKeyID == "" || c.SecretAccessKey == "" {
			return ErrMissingAWSCredentials
		}
	case ProviderAzure:
		if c.TenantID == "" || c.ClientID == "" || c.ClientSecret == "" || c.SubscriptionID == "" {
			return ErrMissingAzureCredentials
		}
	case ProviderGCP:
		if c.ProjectID == "" || c.ServiceAccountKey == "" {
			return ErrMissingGCPCredentials
		}
	default:
		_, err := ParseProvider(string(provider))
		return err
	}

	return nil
}

package domain

import "time"

type ResourceType string

const (
	ResourceTypeVirtualMachine ResourceType = "virtual_machines"
	ResourceTypeDatabase       ResourceType = "databases"
	ResourceTypeStorage        ResourceType = "storage"
)

// ResourceSummary is the aggregated count/usage/cost of one resource category.
// There is one row per (user, provider, resource type).
type ResourceSummary struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Provider        Provider     `json:"provider"`
	ResourceType    ResourceType `json:"resource_type"`
	Count           int          `json:"count"`
	UsagePercentage float64      `json:"usage_percentage"`
	Cost            *float64     `json:"cost,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

package domain

import (
	"encoding/json"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RecommendationDraft is a recommendation while the model output is still
// being segmented.
type RecommendationDraft struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         Priority `json:"priority"`
	PotentialSavings float64  `json:"potential_savings"`
}

type Recommendation struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Provider         Provider        `json:"provider"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Priority         Priority        `json:"priority"`
	PotentialSavings float64         `json:"potential_savings"`
	ResourceIDs      []string        `json:"resource_ids"`
	SourceAnalysis   json.RawMessage `json:"source_analysis,omitempty"`
	Position         int             `json:"position"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ResourceInput is a single resource sent for analysis.
type ResourceInput struct {
	ID              string       `json:"id,omitempty"`
	ResourceType    ResourceType `json:"resource_type"`
	Count           int          `json:"count"`
	UsagePercentage float64      `json:"usage_percentage"`
	Cost            *float64     `json:"cost,omitempty"`
}

// AnalysisInput is the bulk analysis payload.
type AnalysisInput struct {
	CostData     json.RawMessage `json:"costData,omitempty"`
	ResourceData []ResourceInput `json:"resourceData,omitempty"`
}

func (a AnalysisInput) IsEmpty() bool {
	return len(a.CostData) == 0 && len(a.ResourceData) == 0
}

// ResourceIDs returns the ids of the resources in the payload, skipping blanks.
func (a AnalysisInput) ResourceIDs() []string {
	ids := make([]string, 0, len(a.ResourceData))
	for _, r := range a.ResourceData {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func ResourceInputFromSummary(s *ResourceSummary) ResourceInput {
	return ResourceInput{
		ID:              s.ID,
		ResourceType:    s.ResourceType,
		Count:           s.Count,
		UsagePercentage: s.UsagePercentage,
		Cost:            s.Cost,
	}
}

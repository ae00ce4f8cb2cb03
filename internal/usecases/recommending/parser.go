package recommending

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
)

var (
	numberedLine = regexp.MustCompile(`^\d+\.\s*`)
	amount       = regexp.MustCompile(`\$?\d+(\.\d+)?`)
)

// ParseRecommendations segments model output into drafts. Every line starting
// with "N." opens a draft whose title is the rest of the line. Inside a draft a
// line mentioning "priority" sets the priority, a line mentioning "saving" sets
// the savings to its first amount, and any other non-blank line is appended to
// the description. Lines before the first numbered line are ignored.
func ParseRecommendations(text string) []domain.RecommendationDraft {
	drafts := make([]domain.RecommendationDraft, 0)
	var current *domain.RecommendationDraft

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if loc := numberedLine.FindStringIndex(line); loc != nil {
			if current != nil {
				drafts = append(drafts, *current)
			}
			current = &domain.RecommendationDraft{
				Title:    line[loc[1]:],
				Priority: domain.PriorityMedium,
			}
			continue
		}

		if current == nil || line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "priority"):
			current.Priority = parsePriority(lower)

		case strings.Contains(lower, "saving"):
			if savings, ok := parseAmount(line); ok {
				current.PotentialSavings = savings
			}

		default:
			if current.Description != "" {
				current.Description += "\n"
			}
			current.Description += line
		}
	}

	if current != nil {
		drafts = append(drafts, *current)
	}

	return drafts
}

func parsePriority(lower string) domain.Priority {
	switch {
	case strings.Contains(lower, "high"):
		return domain.PriorityHigh
	case strings.Contains(lower, "low"):
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

// parseAmount returns the first number of line. Thousands separators end the
// match, so "$1,200" reads as 1.
func parseAmount(line string) (float64, bool) {
	match := amount.FindString(line)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimPrefix(match, "$"), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

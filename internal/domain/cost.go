package domain

import "time"

type CostPoint struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// CostSeries is what a provider's billing API returns for a period.
type CostSeries struct {
	Currency   string      `json:"currency"`
	TimeSeries []CostPoint `json:"timeSeries"`
}

func (s CostSeries) Total() float64 {
	var total float64
	for _, point := range s.TimeSeries {
		total += point.Cost
	}
	return total
}

type CostPeriod struct {
	Start time.Time
	End   time.Time
}

// LastDays returns the period ending yesterday and spanning days days.
func LastDays(now time.Time, days int) CostPeriod {
	if days < 1 {
		days = 1
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return CostPeriod{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
	}
}

// CostSnapshot is the last fetched cost series of a (user, provider). A new
// fetch supersedes it.
type CostSnapshot struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Provider    Provider   `json:"provider"`
	CostData    CostSeries `json:"cost_data"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	FetchedAt   time.Time  `json:"fetched_at"`
}

package azuredomain

type CostQueryRequest struct {
	Type       string           `json:"type"`
	Timeframe  string           `json:"timeframe"`
	TimePeriod CostTimePeriod   `json:"timePeriod"`
	Dataset    CostQueryDataset `json:"dataset"`
}

type CostTimePeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CostQueryDataset struct {
	Granularity string                          `json:"granularity"`
	Aggregation map[string]CostQueryAggregation `json:"aggregation"`
}

type CostQueryAggregation struct {
	Name     string `json:"name"`
	Function string `json:"function"`
}

type CostQueryColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CostQueryResult struct {
	Properties struct {
		Columns []CostQueryColumn `json:"columns"`
		Rows    [][]any           `json:"rows"`
	} `json:"properties"`
}

// ColumnIndex returns the position of the named column, -1 when absent.
func (r *CostQueryResult) ColumnIndex(name string) int {
	for i, column := range r.Properties.Columns {
		if column.Name == name {
			return i
		}
	}
	return -1
}

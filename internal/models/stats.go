package models

// CategoryRate is one bar of the category breakdown chart.
type CategoryRate struct {
	Category     Category `json:"category"`
	RecordCount  int      `json:"record_count"`
	SurvivalRate float64  `json:"survival_rate"`
}

// Statistics is the aggregate view rendered by the dashboard. The top-line
// fields honor the active category filter; Categories is always computed
// over the full unfiltered record set.
type Statistics struct {
	Filter        string         `json:"filter"`
	TotalKeywords int            `json:"total_keywords"`
	SurvivedCount int            `json:"survived_count"`
	AtRiskCount   int            `json:"at_risk_count"`
	SurvivalRate  float64        `json:"survival_rate"`
	Categories    []CategoryRate `json:"categories"`
}

package models

// Record is one keyword-level row of the share-of-model dataset.
// SurvivedAI reports whether the Google #1 brand for the keyword also
// appears in AI-generated answers.
type Record struct {
	Keyword        string `json:"keyword"`
	GoogleTopBrand string `json:"google_top_1_brand"`
	LLMRecs        string `json:"llm_recs"`
	SurvivedAI     bool   `json:"rank_1_survived_ai"`
}

// Category returns the category assigned to this record's keyword.
func (r *Record) Category() Category {
	return Categorize(r.Keyword)
}

// FormattedRecs returns the LLM recommendation list rendered for display.
func (r *Record) FormattedRecs() string {
	return FormatRecs(r.LLMRecs)
}

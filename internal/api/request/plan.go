package request

// SavePlanRequest carries the user's edits to a fund's plan. Every field is
// optional: absent fields keep their hydrated or default values, mirroring
// how the configuration surface only submits what the user touched.
//
// Amount and FeeRate are decimal text as entered; parsing and range checks
// happen during draft validation, not here.
type SavePlanRequest struct {
	Amount     *string `json:"amount"`
	FeeRate    *string `json:"feeRate"`
	Cycle      *string `json:"cycle"`
	WeeklyDay  *int    `json:"weeklyDay"`
	MonthlyDay *int    `json:"monthlyDay"`
	Enabled    *bool   `json:"enabled"`
}

// PreviewFirstDateRequest carries a cycle/selector combination for a
// first-execution-date preview. Selector zero values mean "absent"; the
// scheduler's fallback rules apply.
type PreviewFirstDateRequest struct {
	Cycle      string `json:"cycle"`
	WeeklyDay  int    `json:"weeklyDay"`
	MonthlyDay int    `json:"monthlyDay"`
}

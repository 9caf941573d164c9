package model

import "github.com/fvdberg/DCA-Planner-Backend/internal/schedule"

// PlanType is the single plan type emitted by this system.
const PlanType = "dca"

// Plan is a finalized dollar-cost-averaging configuration. Plans are
// immutable once emitted; editing a plan produces a new one through the
// form coordinator.
//
// Exactly one of WeeklyDay/MonthlyDay is non-nil, selected by Cycle:
// weekly and biweekly populate WeeklyDay, monthly populates MonthlyDay,
// daily leaves both nil.
type Plan struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	FundID     string         `json:"fundId"`
	FundCode   string         `json:"fundCode"`
	FundName   string         `json:"fundName"`
	Amount     float64        `json:"amount"`
	FeeRate    float64        `json:"feeRate"`
	Cycle      schedule.Cycle `json:"cycle"`
	FirstDate  string         `json:"firstDate"`
	WeeklyDay  *int           `json:"weeklyDay"`
	MonthlyDay *int           `json:"monthlyDay"`
	Enabled    bool           `json:"enabled"`
}

// PlanOverview pairs a fund with its plan, if one has been saved.
type PlanOverview struct {
	Fund Fund  `json:"fund"`
	Plan *Plan `json:"plan,omitempty"`
}

// Draft is the mutable, in-progress plan configuration owned by the form
// coordinator. Amount and FeeRate stay as entered text so partial or empty
// numeric input is representable during editing; FirstDate is derived from
// the cycle and selectors, never entered directly.
type Draft struct {
	Amount     string         `json:"amount"`
	FeeRate    string         `json:"feeRate"`
	Cycle      schedule.Cycle `json:"cycle"`
	WeeklyDay  int            `json:"weeklyDay"`
	MonthlyDay int            `json:"monthlyDay"`
	FirstDate  string         `json:"firstDate"`
	Enabled    bool           `json:"enabled"`
}

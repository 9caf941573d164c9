package testutil

import (
	"database/sql"
	"testing"

	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund
//	fund := testutil.NewFund().
//	    WithCode("110022").
//	    WithName("Test Index Fund").
//	    Build(t, db)
type FundBuilder struct {
	ID   string
	Code string
	Name string
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		ID:   MakeID(),
		Code: MakeFundCode(),
		Name: MakeFundName("Test Fund"),
	}
}

// WithID sets a custom ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.ID = id
	return b
}

// WithCode sets a custom fund code.
func (b *FundBuilder) WithCode(code string) *FundBuilder {
	b.Code = code
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// Build inserts the fund and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	fund := model.Fund{ID: b.ID, Code: b.Code, Name: b.Name}

	_, err := db.Exec(
		`INSERT INTO fund (id, code, name) VALUES (?, ?, ?)`,
		fund.ID, fund.Code, fund.Name,
	)
	if err != nil {
		t.Fatalf("Failed to insert test fund: %v", err)
	}

	return fund
}

// PlanBuilder provides a fluent interface for creating test plans.
//
// Example usage:
//
//	fund := testutil.NewFund().Build(t, db)
//	plan := testutil.NewPlan(fund).
//	    WithCycle(schedule.CycleWeekly).
//	    WithWeeklyDay(5).
//	    WithFirstDate("2024-05-17").
//	    Build(t, db)
type PlanBuilder struct {
	ID         string
	Fund       model.Fund
	Amount     float64
	FeeRate    float64
	Cycle      schedule.Cycle
	FirstDate  string
	WeeklyDay  *int
	MonthlyDay *int
	Enabled    bool
}

// NewPlan creates a PlanBuilder with sensible defaults: an enabled monthly
// plan on the 15th.
func NewPlan(fund model.Fund) *PlanBuilder {
	day := 15
	return &PlanBuilder{
		ID:         MakeID(),
		Fund:       fund,
		Amount:     500,
		FeeRate:    0.12,
		Cycle:      schedule.CycleMonthly,
		FirstDate:  "2024-05-15",
		MonthlyDay: &day,
		Enabled:    true,
	}
}

// WithID sets a custom ID.
func (b *PlanBuilder) WithID(id string) *PlanBuilder {
	b.ID = id
	return b
}

// WithAmount sets a custom amount.
func (b *PlanBuilder) WithAmount(amount float64) *PlanBuilder {
	b.Amount = amount
	return b
}

// WithFeeRate sets a custom fee rate.
func (b *PlanBuilder) WithFeeRate(feeRate float64) *PlanBuilder {
	b.FeeRate = feeRate
	return b
}

// WithCycle sets the recurrence cycle and clears both selectors; pair with
// WithWeeklyDay or WithMonthlyDay as the cycle requires.
func (b *PlanBuilder) WithCycle(cycle schedule.Cycle) *PlanBuilder {
	b.Cycle = cycle
	b.WeeklyDay = nil
	b.MonthlyDay = nil
	return b
}

// WithWeeklyDay sets the weekday selector.
func (b *PlanBuilder) WithWeeklyDay(day int) *PlanBuilder {
	b.WeeklyDay = &day
	return b
}

// WithMonthlyDay sets the day-of-month selector.
func (b *PlanBuilder) WithMonthlyDay(day int) *PlanBuilder {
	b.MonthlyDay = &day
	return b
}

// WithFirstDate sets the first execution date.
func (b *PlanBuilder) WithFirstDate(date string) *PlanBuilder {
	b.FirstDate = date
	return b
}

// Disabled marks the plan as disabled.
func (b *PlanBuilder) Disabled() *PlanBuilder {
	b.Enabled = false
	return b
}

// Build inserts the plan and returns it.
func (b *PlanBuilder) Build(t *testing.T, db *sql.DB) model.Plan {
	t.Helper()

	plan := model.Plan{
		ID:         b.ID,
		Type:       model.PlanType,
		FundID:     b.Fund.ID,
		FundCode:   b.Fund.Code,
		FundName:   b.Fund.Name,
		Amount:     b.Amount,
		FeeRate:    b.FeeRate,
		Cycle:      b.Cycle,
		FirstDate:  b.FirstDate,
		WeeklyDay:  b.WeeklyDay,
		MonthlyDay: b.MonthlyDay,
		Enabled:    b.Enabled,
	}

	var weeklyDay, monthlyDay any
	if plan.WeeklyDay != nil {
		weeklyDay = *plan.WeeklyDay
	}
	if plan.MonthlyDay != nil {
		monthlyDay = *plan.MonthlyDay
	}

	_, err := db.Exec(
		`INSERT INTO dca_plan (
            id, fund_id, type, amount, fee_rate, cycle, first_date,
            weekly_day, monthly_day, enabled
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.FundID, plan.Type, plan.Amount, plan.FeeRate,
		plan.Cycle, plan.FirstDate, weeklyDay, monthlyDay, plan.Enabled,
	)
	if err != nil {
		t.Fatalf("Failed to insert test plan: %v", err)
	}

	return plan
}

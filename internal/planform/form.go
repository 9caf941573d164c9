// Package planform owns the mutable draft of a dollar-cost-averaging plan.
//
// A Form is created when the configuration surface opens, either from
// create-mode defaults or hydrated from an existing plan, and is the only
// writer of its draft. Every change to the cycle or a day selector
// recomputes the first execution date in the same step, so the draft is
// never left with a stale cycle/selector/date combination. On confirm the
// draft is re-validated and converted once into an immutable Plan; the Form
// is then spent and should be discarded by its owner.
package planform

import (
	"strconv"
	"time"

	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
	"github.com/fvdberg/DCA-Planner-Backend/internal/validation"
)

// State is the lifecycle state of a Form.
type State int

const (
	// StateEditing permits all mutations. Initial state.
	StateEditing State = iota

	// StateSubmitted is terminal: the Form has emitted its plan and
	// accepts no further mutations or confirmations.
	StateSubmitted
)

// Form coordinates the draft of a single plan for a single fund.
type Form struct {
	fund  model.Fund
	today time.Time
	draft model.Draft
	state State
}

// New creates a Form for the given fund. When existing is nil the draft
// starts from create-mode defaults; otherwise it hydrates from the saved
// plan, with each absent or out-of-range field independently falling back
// to its default.
//
// today must be a start-of-day date from the resolved calendar zone.
func New(fund model.Fund, existing *model.Plan, today time.Time) *Form {
	f := &Form{fund: fund, today: today}
	f.draft = f.defaults()

	if existing == nil {
		f.recompute()
		return f
	}
	f.hydrate(existing)
	return f
}

// defaults builds the create-mode draft: monthly cycle, today's weekday and
// day-of-month as selectors (clamped to their valid ranges), enabled, empty
// amount and a zero fee rate. FirstDate is filled by recompute.
func (f *Form) defaults() model.Draft {
	weeklyDay := int(f.today.Weekday())
	if !schedule.ValidWeeklyDay(weeklyDay) {
		weeklyDay = 1
	}
	monthlyDay := f.today.Day()
	if !schedule.ValidMonthlyDay(monthlyDay) {
		monthlyDay = 1
	}

	return model.Draft{
		Amount:     "",
		FeeRate:    "0",
		Cycle:      schedule.CycleMonthly,
		WeeklyDay:  weeklyDay,
		MonthlyDay: monthlyDay,
		Enabled:    true,
	}
}

// hydrate copies an existing plan into the draft. A saved firstDate is
// honored as-is; it stays until the user next changes the cycle or a
// selector, at which point it is recomputed. Plans saved with a cycle this
// version no longer recognizes fall back to the monthly default path,
// ignoring their day selectors.
func (f *Form) hydrate(existing *model.Plan) {
	// A zero amount can never have passed validation; treat it as an
	// absent field from an older record and keep the default.
	if existing.Amount > 0 {
		f.draft.Amount = strconv.FormatFloat(existing.Amount, 'f', -1, 64)
	}
	if existing.FeeRate >= 0 {
		f.draft.FeeRate = strconv.FormatFloat(existing.FeeRate, 'f', -1, 64)
	}
	f.draft.Enabled = existing.Enabled

	if !existing.Cycle.Valid() {
		// Unknown cycle: monthly defaults, supplied selectors ignored.
		f.recompute()
		if existing.FirstDate != "" {
			f.draft.FirstDate = existing.FirstDate
		}
		return
	}

	if existing.WeeklyDay != nil && schedule.ValidWeeklyDay(*existing.WeeklyDay) {
		f.draft.WeeklyDay = *existing.WeeklyDay
	}
	if existing.MonthlyDay != nil && schedule.ValidMonthlyDay(*existing.MonthlyDay) {
		f.draft.MonthlyDay = *existing.MonthlyDay
	}
	f.draft.Cycle = existing.Cycle
	f.recompute()
	if existing.FirstDate != "" {
		f.draft.FirstDate = existing.FirstDate
	}
}

// recompute derives FirstDate from the current cycle and selectors. Called
// from every cycle/selector mutation, in the same step as the mutation.
func (f *Form) recompute() {
	first := schedule.ComputeFirstDate(f.draft.Cycle, f.draft.WeeklyDay, f.draft.MonthlyDay, f.today)
	f.draft.FirstDate = first.Format(schedule.DateLayout)
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() model.Draft {
	return f.draft
}

// State returns the lifecycle state of the form.
func (f *Form) State() State {
	return f.state
}

// SetAmount updates the purchase amount text.
func (f *Form) SetAmount(amount string) {
	if f.state != StateEditing {
		return
	}
	f.draft.Amount = amount
}

// SetFeeRate updates the fee rate text.
func (f *Form) SetFeeRate(feeRate string) {
	if f.state != StateEditing {
		return
	}
	f.draft.FeeRate = feeRate
}

// SetEnabled toggles whether the plan is active.
func (f *Form) SetEnabled(enabled bool) {
	if f.state != StateEditing {
		return
	}
	f.draft.Enabled = enabled
}

// SetCycle switches the recurrence cycle and recomputes the first
// execution date.
func (f *Form) SetCycle(cycle schedule.Cycle) {
	if f.state != StateEditing {
		return
	}
	f.draft.Cycle = cycle
	f.recompute()
}

// SetWeeklyDay selects the weekday for weekly/biweekly cycles and
// recomputes the first execution date.
func (f *Form) SetWeeklyDay(day int) {
	if f.state != StateEditing {
		return
	}
	f.draft.WeeklyDay = day
	f.recompute()
}

// SetMonthlyDay selects the day of month for monthly cycles and recomputes
// the first execution date.
func (f *Form) SetMonthlyDay(day int) {
	if f.state != StateEditing {
		return
	}
	f.draft.MonthlyDay = day
	f.recompute()
}

// Validate checks the current draft against the gating rules. A nil result
// means Confirm would emit a plan.
func (f *Form) Validate() error {
	return validation.ValidatePlanDraft(f.draft, f.fund)
}

// Confirm re-validates the draft and, if it passes, builds the immutable
// Plan and hands it to onConfirm exactly once, moving the form to
// StateSubmitted. An invalid draft or an already-submitted form is a no-op;
// the caller is expected to be gating submission on Validate already.
func (f *Form) Confirm(onConfirm func(model.Plan)) {
	if f.state != StateEditing {
		return
	}
	if f.Validate() != nil {
		return
	}

	// Validate guarantees both parse.
	amount, _ := strconv.ParseFloat(f.draft.Amount, 64)
	feeRate, _ := strconv.ParseFloat(f.draft.FeeRate, 64)

	plan := model.Plan{
		Type:      model.PlanType,
		FundID:    f.fund.ID,
		FundCode:  f.fund.Code,
		FundName:  f.fund.Name,
		Amount:    amount,
		FeeRate:   feeRate,
		Cycle:     f.draft.Cycle,
		FirstDate: f.draft.FirstDate,
		Enabled:   f.draft.Enabled,
	}

	// Exactly one selector survives into the plan, chosen by the cycle.
	switch {
	case f.draft.Cycle.UsesWeeklyDay():
		day := f.draft.WeeklyDay
		plan.WeeklyDay = &day
	case f.draft.Cycle.UsesMonthlyDay():
		day := f.draft.MonthlyDay
		plan.MonthlyDay = &day
	}

	f.state = StateSubmitted
	if onConfirm != nil {
		onConfirm(plan)
	}
}

// Cancel discards the draft with no validation and no emission. onClose is
// invoked so the owner can tear down the surface.
func (f *Form) Cancel(onClose func()) {
	if onClose != nil {
		onClose()
	}
}

package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
)

// ValidatePlanDraft validates a plan draft against its fund before the draft
// is allowed to become a Plan. It is a pure predicate: the same check gates
// continuous validity feedback and the confirm action itself.
//
// Rules, all required:
//   - fund code present
//   - amount parses and is strictly positive
//   - feeRate parses and is non-negative
//   - cycle is one of the four defined values
//   - weekly/biweekly cycles carry a weekday selector in 1..5
//   - monthly cycles carry a day-of-month selector in 1..28
//   - firstDate present and well-formed (always true post-computation,
//     checked defensively)
//
// Malformed numeric text is a validation failure, never an error: partial or
// empty input is expected while the user is still editing.
func ValidatePlanDraft(draft model.Draft, fund model.Fund) error {
	errors := make(map[string]string)

	if strings.TrimSpace(fund.Code) == "" {
		errors["fundCode"] = "fund code is required"
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(draft.Amount), 64)
	if err != nil || math.IsNaN(amount) || amount <= 0 {
		errors["amount"] = "amount must be a number greater than 0"
	}

	feeRate, err := strconv.ParseFloat(strings.TrimSpace(draft.FeeRate), 64)
	if err != nil || math.IsNaN(feeRate) || feeRate < 0 {
		errors["feeRate"] = "fee rate must be a non-negative number"
	}

	if !draft.Cycle.Valid() {
		errors["cycle"] = fmt.Sprintf("invalid cycle: %s", draft.Cycle)
	}

	if draft.Cycle.UsesWeeklyDay() && !schedule.ValidWeeklyDay(draft.WeeklyDay) {
		errors["weeklyDay"] = "weekday must be between 1 (Monday) and 5 (Friday)"
	}

	if draft.Cycle.UsesMonthlyDay() && !schedule.ValidMonthlyDay(draft.MonthlyDay) {
		errors["monthlyDay"] = "day of month must be between 1 and 28"
	}

	if strings.TrimSpace(draft.FirstDate) == "" {
		errors["firstDate"] = "first execution date is required"
	} else if _, err := time.Parse(schedule.DateLayout, draft.FirstDate); err != nil {
		errors["firstDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

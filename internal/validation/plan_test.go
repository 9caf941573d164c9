package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
	"github.com/fvdberg/DCA-Planner-Backend/internal/validation"
)

func validDraft() model.Draft {
	return model.Draft{
		Amount:     "500",
		FeeRate:    "0.12",
		Cycle:      schedule.CycleMonthly,
		WeeklyDay:  3,
		MonthlyDay: 15,
		FirstDate:  "2024-06-15",
		Enabled:    true,
	}
}

func testFund() model.Fund {
	return model.Fund{ID: "f-1", Code: "110022", Name: "Test Index Fund"}
}

// TestValidatePlanDraft_Valid tests drafts that must pass.
func TestValidatePlanDraft_Valid(t *testing.T) {
	t.Run("monthly draft with all fields", func(t *testing.T) {
		if err := validation.ValidatePlanDraft(validDraft(), testFund()); err != nil {
			t.Errorf("Expected valid draft, got error: %v", err)
		}
	})

	t.Run("weekly draft with weekday selector", func(t *testing.T) {
		draft := validDraft()
		draft.Cycle = schedule.CycleWeekly
		draft.WeeklyDay = 5
		draft.MonthlyDay = 0 // irrelevant for weekly

		if err := validation.ValidatePlanDraft(draft, testFund()); err != nil {
			t.Errorf("Expected valid draft, got error: %v", err)
		}
	})

	t.Run("daily draft needs no selectors", func(t *testing.T) {
		draft := validDraft()
		draft.Cycle = schedule.CycleDaily
		draft.WeeklyDay = 0
		draft.MonthlyDay = 0

		if err := validation.ValidatePlanDraft(draft, testFund()); err != nil {
			t.Errorf("Expected valid draft, got error: %v", err)
		}
	})

	t.Run("zero fee rate is allowed", func(t *testing.T) {
		draft := validDraft()
		draft.FeeRate = "0"

		if err := validation.ValidatePlanDraft(draft, testFund()); err != nil {
			t.Errorf("Expected valid draft, got error: %v", err)
		}
	})
}

// TestValidatePlanDraft_Invalid tests every gating rule.
//
// WHY: validation is the only barrier between editing and emitting an
// immutable plan; each rule must independently block confirmation.
func TestValidatePlanDraft_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Draft, *model.Fund)
		field   string
	}{
		{
			name:   "missing fund code",
			mutate: func(d *model.Draft, f *model.Fund) { f.Code = "" },
			field:  "fundCode",
		},
		{
			name:   "zero amount",
			mutate: func(d *model.Draft, f *model.Fund) { d.Amount = "0" },
			field:  "amount",
		},
		{
			name:   "negative amount",
			mutate: func(d *model.Draft, f *model.Fund) { d.Amount = "-100" },
			field:  "amount",
		},
		{
			name:   "empty amount",
			mutate: func(d *model.Draft, f *model.Fund) { d.Amount = "" },
			field:  "amount",
		},
		{
			name:   "unparsable amount",
			mutate: func(d *model.Draft, f *model.Fund) { d.Amount = "abc" },
			field:  "amount",
		},
		{
			name:   "negative fee rate",
			mutate: func(d *model.Draft, f *model.Fund) { d.FeeRate = "-1" },
			field:  "feeRate",
		},
		{
			name:   "NaN fee rate",
			mutate: func(d *model.Draft, f *model.Fund) { d.FeeRate = "NaN" },
			field:  "feeRate",
		},
		{
			name:   "unknown cycle",
			mutate: func(d *model.Draft, f *model.Fund) { d.Cycle = "yearly" },
			field:  "cycle",
		},
		{
			name: "weekly with weekend selector",
			mutate: func(d *model.Draft, f *model.Fund) {
				d.Cycle = schedule.CycleWeekly
				d.WeeklyDay = 6
			},
			field: "weeklyDay",
		},
		{
			name: "biweekly with zero selector",
			mutate: func(d *model.Draft, f *model.Fund) {
				d.Cycle = schedule.CycleBiweekly
				d.WeeklyDay = 0
			},
			field: "weeklyDay",
		},
		{
			name: "monthly with day 29",
			mutate: func(d *model.Draft, f *model.Fund) {
				d.MonthlyDay = 29
			},
			field: "monthlyDay",
		},
		{
			name:   "missing first date",
			mutate: func(d *model.Draft, f *model.Fund) { d.FirstDate = "" },
			field:  "firstDate",
		},
		{
			name:   "malformed first date",
			mutate: func(d *model.Draft, f *model.Fund) { d.FirstDate = "15-05-2024" },
			field:  "firstDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			fund := testFund()
			tt.mutate(&draft, &fund)

			err := validation.ValidatePlanDraft(draft, fund)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var vErr *validation.Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("Expected error on field %q, got fields %v", tt.field, vErr.Fields)
			}
		})
	}
}

// TestValidationError_Message verifies the aggregated message format.
func TestValidationError_Message(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{
		"amount": "amount must be a number greater than 0",
		"cycle":  "invalid cycle: yearly",
	}}

	msg := err.Error()
	if !strings.Contains(msg, "amount:") || !strings.Contains(msg, "cycle:") {
		t.Errorf("Expected both fields in message, got %q", msg)
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/request"
	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
	"github.com/fvdberg/DCA-Planner-Backend/internal/testutil"
	"github.com/fvdberg/DCA-Planner-Backend/internal/validation"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

// TestPlanService_SavePlan_Create tests the create-mode save flow.
//
// WHY: saving is the one operation that ties the whole pipeline together:
// hydration, edit application, date recomputation, validation and
// persistence. Test "today" is pinned to Wednesday 2024-05-15.
func TestPlanService_SavePlan_Create(t *testing.T) {
	t.Run("saves a monthly plan with recomputed first date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)
		fund := testutil.NewFund().Build(t, db)

		plan, err := svc.SavePlan(context.Background(), fund.ID, request.SavePlanRequest{
			Amount:     strPtr("500"),
			Cycle:      strPtr("monthly"),
			MonthlyDay: intPtr(10),
		})
		if err != nil {
			t.Fatalf("SavePlan() returned unexpected error: %v", err)
		}

		// Day 10 has passed on the 15th, so the plan starts next month.
		if plan.FirstDate != "2024-06-10" {
			t.Errorf("Expected firstDate 2024-06-10, got %s", plan.FirstDate)
		}
		if plan.MonthlyDay == nil || *plan.MonthlyDay != 10 {
			t.Errorf("Expected monthlyDay 10, got %v", plan.MonthlyDay)
		}
		if plan.WeeklyDay != nil {
			t.Error("Expected nil weeklyDay on a monthly plan")
		}
		if !plan.Enabled {
			t.Error("Expected new plans to default to enabled")
		}

		testutil.AssertRowCount(t, db, "dca_plan", 1)
	})

	t.Run("saves a weekly plan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)
		fund := testutil.NewFund().Build(t, db)

		plan, err := svc.SavePlan(context.Background(), fund.ID, request.SavePlanRequest{
			Amount:    strPtr("250"),
			FeeRate:   strPtr("0.15"),
			Cycle:     strPtr("weekly"),
			WeeklyDay: intPtr(5),
		})
		if err != nil {
			t.Fatalf("SavePlan() returned unexpected error: %v", err)
		}

		// Friday after Wednesday the 15th.
		if plan.FirstDate != "2024-05-17" {
			t.Errorf("Expected firstDate 2024-05-17, got %s", plan.FirstDate)
		}
		if plan.FeeRate != 0.15 {
			t.Errorf("Expected feeRate 0.15, got %v", plan.FeeRate)
		}
	})

	t.Run("unknown fund returns ErrFundNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)

		_, err := svc.SavePlan(context.Background(), testutil.MakeID(), request.SavePlanRequest{
			Amount: strPtr("500"),
		})
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})

	t.Run("invalid draft persists nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)
		fund := testutil.NewFund().Build(t, db)

		_, err := svc.SavePlan(context.Background(), fund.ID, request.SavePlanRequest{
			Amount: strPtr("0"),
		})

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %v", err)
		}
		if _, ok := vErr.Fields["amount"]; !ok {
			t.Errorf("Expected error on amount, got %v", vErr.Fields)
		}

		testutil.AssertRowCount(t, db, "dca_plan", 0)
	})
}

// TestPlanService_SavePlan_Edit tests the edit-mode save flow.
//
// WHY: edit mode must hydrate from the saved plan so untouched fields carry
// over, while touched cycle/selector fields force a recomputed first date.
func TestPlanService_SavePlan_Edit(t *testing.T) {
	t.Run("untouched fields carry over, plan ID is stable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)
		fund := testutil.NewFund().Build(t, db)
		existing := testutil.NewPlan(fund).WithAmount(300).WithFeeRate(0.15).Build(t, db)

		plan, err := svc.SavePlan(context.Background(), fund.ID, request.SavePlanRequest{
			Enabled: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("SavePlan() returned unexpected error: %v", err)
		}

		if plan.ID != existing.ID {
			t.Errorf("Expected stable plan ID %s, got %s", existing.ID, plan.ID)
		}
		if plan.Amount != 300 || plan.FeeRate != 0.15 {
			t.Errorf("Expected hydrated amount/feeRate, got %v / %v", plan.Amount, plan.FeeRate)
		}
		if plan.Enabled {
			t.Error("Expected plan to be disabled")
		}
		// The saved firstDate is honored since no cycle/selector changed.
		if plan.FirstDate != existing.FirstDate {
			t.Errorf("Expected preserved firstDate %s, got %s", existing.FirstDate, plan.FirstDate)
		}

		testutil.AssertRowCount(t, db, "dca_plan", 1)
	})

	t.Run("selector change recomputes the first date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.NewPlan(fund).WithFirstDate("2024-07-05").WithMonthlyDay(5).Build(t, db)

		plan, err := svc.SavePlan(context.Background(), fund.ID, request.SavePlanRequest{
			MonthlyDay: intPtr(20),
		})
		if err != nil {
			t.Fatalf("SavePlan() returned unexpected error: %v", err)
		}

		if plan.FirstDate != "2024-05-20" {
			t.Errorf("Expected recomputed firstDate 2024-05-20, got %s", plan.FirstDate)
		}
	})

	t.Run("cycle switch swaps the persisted selector", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPlanService(t, db)
		fund := testutil.NewFund().Build(t, db)
		testutil.NewPlan(fund).Build(t, db)

		plan, err := svc.SavePlan(context.Background(), fund.ID, request.SavePlanRequest{
			Cycle:     strPtr("biweekly"),
			WeeklyDay: intPtr(4),
		})
		if err != nil {
			t.Fatalf("SavePlan() returned unexpected error: %v", err)
		}

		if plan.Cycle != schedule.CycleBiweekly {
			t.Errorf("Expected biweekly cycle, got %s", plan.Cycle)
		}
		if plan.WeeklyDay == nil || *plan.WeeklyDay != 4 {
			t.Errorf("Expected weeklyDay 4, got %v", plan.WeeklyDay)
		}
		if plan.MonthlyDay != nil {
			t.Errorf("Expected nil monthlyDay, got %v", *plan.MonthlyDay)
		}
		if plan.FirstDate != "2024-05-16" {
			t.Errorf("Expected firstDate 2024-05-16, got %s", plan.FirstDate)
		}
	})
}

// TestPlanService_GetPlanOverview tests the concurrent fund/plan join.
func TestPlanService_GetPlanOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPlanService(t, db)

	planned := testutil.NewFund().WithCode("110022").Build(t, db)
	unplanned := testutil.NewFund().WithCode("220011").Build(t, db)
	testutil.NewPlan(planned).Build(t, db)

	overview, err := svc.GetPlanOverview(context.Background())
	if err != nil {
		t.Fatalf("GetPlanOverview() returned unexpected error: %v", err)
	}

	if len(overview) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(overview))
	}
	if overview[0].Fund.ID != planned.ID || overview[0].Plan == nil {
		t.Errorf("Expected first entry to be the planned fund with its plan")
	}
	if overview[1].Fund.ID != unplanned.ID || overview[1].Plan != nil {
		t.Errorf("Expected second entry to be the unplanned fund without a plan")
	}
}

// TestPlanService_PreviewFirstDate tests the stateless preview.
func TestPlanService_PreviewFirstDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPlanService(t, db)

	t.Run("computes from the pinned today", func(t *testing.T) {
		firstDate, err := svc.PreviewFirstDate(request.PreviewFirstDateRequest{
			Cycle:      "monthly",
			MonthlyDay: 20,
		})
		if err != nil {
			t.Fatalf("PreviewFirstDate() returned unexpected error: %v", err)
		}
		if firstDate != "2024-05-20" {
			t.Errorf("Expected 2024-05-20, got %s", firstDate)
		}
	})

	t.Run("rejects unknown cycles", func(t *testing.T) {
		_, err := svc.PreviewFirstDate(request.PreviewFirstDateRequest{Cycle: "yearly"})

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %v", err)
		}
	})
}

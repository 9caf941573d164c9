package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/request"
	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/model"
	"github.com/fvdberg/DCA-Planner-Backend/internal/planform"
	"github.com/fvdberg/DCA-Planner-Backend/internal/repository"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
	"github.com/fvdberg/DCA-Planner-Backend/internal/timezone"
	"github.com/fvdberg/DCA-Planner-Backend/internal/validation"
)

// PlanService handles plan-related business logic. It is the caller of the
// form coordinator: saving a plan hydrates a form from the fund's existing
// plan (or create-mode defaults), applies the submitted edits through the
// form's setters so the first execution date is recomputed from the latest
// combination, and persists the plan the form emits on confirmation.
type PlanService struct {
	planRepo *repository.PlanRepository
	fundRepo *repository.FundRepository
	tz       *timezone.Resolver
}

// NewPlanService creates a new PlanService with the provided dependencies.
func NewPlanService(
	planRepo *repository.PlanRepository,
	fundRepo *repository.FundRepository,
	tz *timezone.Resolver,
) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		fundRepo: fundRepo,
		tz:       tz,
	}
}

// GetPlan retrieves a plan by ID.
func (s *PlanService) GetPlan(planID string) (model.Plan, error) {
	return s.planRepo.GetPlan(planID)
}

// GetPlanForFund retrieves the plan configured for a fund.
func (s *PlanService) GetPlanForFund(fundID string) (model.Plan, error) {
	return s.planRepo.GetPlanByFund(fundID)
}

// GetAllPlans retrieves all plans.
func (s *PlanService) GetAllPlans() ([]model.Plan, error) {
	return s.planRepo.GetAllPlans()
}

// GetPlanOverview returns every fund paired with its plan, if any. Funds
// and plans are loaded concurrently and joined by fund ID.
func (s *PlanService) GetPlanOverview(ctx context.Context) ([]model.PlanOverview, error) {
	var (
		funds []model.Fund
		plans []model.Plan
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		funds, err = s.fundRepo.GetAllFunds()
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = s.planRepo.GetAllPlans()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plansByFund := make(map[string]model.Plan, len(plans))
	for _, plan := range plans {
		plansByFund[plan.FundID] = plan
	}

	overview := make([]model.PlanOverview, 0, len(funds))
	for _, fund := range funds {
		entry := model.PlanOverview{Fund: fund}
		if plan, ok := plansByFund[fund.ID]; ok {
			entry.Plan = &plan
		}
		overview = append(overview, entry)
	}

	return overview, nil
}

// SavePlan creates or replaces the plan for a fund.
//
// The submitted edits are applied field by field: absent fields keep their
// hydrated (edit mode) or default (create mode) values. A draft that fails
// validation returns a *validation.Error and persists nothing.
func (s *PlanService) SavePlan(ctx context.Context, fundID string, req request.SavePlanRequest) (model.Plan, error) {
	fund, err := s.fundRepo.GetFund(fundID)
	if err != nil {
		return model.Plan{}, err
	}

	var existing *model.Plan
	current, err := s.planRepo.GetPlanByFund(fundID)
	switch {
	case err == nil:
		existing = &current
	case errors.Is(err, apperrors.ErrPlanNotFoundForFund):
		// Create mode.
	default:
		return model.Plan{}, err
	}

	form := planform.New(fund, existing, s.tz.Today())

	if req.Amount != nil {
		form.SetAmount(*req.Amount)
	}
	if req.FeeRate != nil {
		form.SetFeeRate(*req.FeeRate)
	}
	if req.Enabled != nil {
		form.SetEnabled(*req.Enabled)
	}
	if req.Cycle != nil {
		form.SetCycle(schedule.Cycle(*req.Cycle))
	}
	if req.WeeklyDay != nil {
		form.SetWeeklyDay(*req.WeeklyDay)
	}
	if req.MonthlyDay != nil {
		form.SetMonthlyDay(*req.MonthlyDay)
	}

	if err := form.Validate(); err != nil {
		return model.Plan{}, err
	}

	var saved *model.Plan
	form.Confirm(func(plan model.Plan) {
		if existing != nil {
			plan.ID = existing.ID
		} else {
			plan.ID = uuid.New().String()
		}
		saved = &plan
	})
	if saved == nil {
		return model.Plan{}, apperrors.ErrPlanNotConfirmed
	}

	if err := s.planRepo.UpsertPlan(ctx, *saved); err != nil {
		return model.Plan{}, err
	}

	return *saved, nil
}

// DeletePlan removes a plan by ID.
func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	return s.planRepo.DeletePlan(ctx, planID)
}

// PreviewFirstDate computes the first execution date for a cycle/selector
// combination without touching any stored plan. Selector zero values mean
// "absent" and trigger the scheduler's fallback rules.
func (s *PlanService) PreviewFirstDate(req request.PreviewFirstDateRequest) (string, error) {
	cycle := schedule.Cycle(req.Cycle)
	if !cycle.Valid() {
		return "", &validation.Error{Fields: map[string]string{
			"cycle": "invalid cycle: " + req.Cycle,
		}}
	}

	first := schedule.ComputeFirstDate(cycle, req.WeeklyDay, req.MonthlyDay, s.tz.Today())
	return first.Format(schedule.DateLayout), nil
}

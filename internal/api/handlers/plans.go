package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/request"
	"github.com/fvdberg/DCA-Planner-Backend/internal/api/response"
	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/service"
	"github.com/fvdberg/DCA-Planner-Backend/internal/validation"
)

// PlanHandler handles HTTP requests for plan endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the planService.
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler creates a new PlanHandler with the provided service dependency.
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// GetAllPlans handles GET requests to retrieve all plans.
//
// Endpoint: GET /api/plan
// Response: 200 OK with array of Plan
// Error: 500 Internal Server Error if retrieval fails
func (h *PlanHandler) GetAllPlans(w http.ResponseWriter, _ *http.Request) {

	plans, err := h.planService.GetAllPlans()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePlans.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, plans)
}

// GetPlanOverview handles GET requests for the fund/plan overview.
//
// Endpoint: GET /api/plan/overview
// Response: 200 OK with array of PlanOverview (every fund, plan optional)
// Error: 500 Internal Server Error if retrieval fails
func (h *PlanHandler) GetPlanOverview(w http.ResponseWriter, r *http.Request) {

	overview, err := h.planService.GetPlanOverview(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePlans.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

// GetPlan handles GET requests to retrieve a single plan by ID.
//
// Endpoint: GET /api/plan/{uuid}
// Response: 200 OK with Plan
// Error: 400 Bad Request if the plan ID is invalid (validated by middleware)
// Error: 404 Not Found if the plan does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	plan, err := h.planService.GetPlan(planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePlan.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// GetPlanForFund handles GET requests to retrieve the plan saved for a fund.
// The response is the edit-mode hydration source for the configuration
// surface.
//
// Endpoint: GET /api/fund/{uuid}/plan
// Response: 200 OK with Plan
// Error: 400 Bad Request if the fund ID is invalid (validated by middleware)
// Error: 404 Not Found if the fund has no plan
// Error: 500 Internal Server Error if retrieval fails
func (h *PlanHandler) GetPlanForFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	plan, err := h.planService.GetPlanForFund(fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanNotFoundForFund) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanNotFoundForFund.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePlan.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// SavePlan handles PUT requests to create or replace the plan for a fund.
// An existing plan hydrates the draft; submitted fields are applied on top
// and the first execution date is recomputed from the final combination.
//
// Endpoint: PUT /api/fund/{uuid}/plan
// Request Body: SavePlanRequest (amount, feeRate, cycle, weeklyDay,
// monthlyDay, enabled; all optional)
// Response: 200 OK with the saved Plan
// Error: 400 Bad Request if the body is invalid or the draft fails validation
// Error: 404 Not Found if the fund does not exist
// Error: 500 Internal Server Error if persistence fails
func (h *PlanHandler) SavePlan(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.SavePlanRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	plan, err := h.planService.SavePlan(r.Context(), fundID, req)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
		case errors.Is(err, apperrors.ErrFundNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePlan.Error(), err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// DeletePlan handles DELETE requests to remove a plan.
//
// Endpoint: DELETE /api/plan/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the plan ID is invalid (validated by middleware)
// Error: 404 Not Found if the plan does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	if err := h.planService.DeletePlan(r.Context(), planID); err != nil {
		if errors.Is(err, apperrors.ErrPlanNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeletePlan.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// PreviewFirstDate handles GET requests for a first-execution-date preview.
// The configuration surface uses this to show the computed date live as the
// user switches cycles and selectors.
//
// Endpoint: GET /api/plan/preview?cycle=monthly&monthlyDay=15
// Response: 200 OK with {"firstDate": "YYYY-MM-DD"}
// Error: 400 Bad Request if the cycle is missing/invalid or a selector is
// not numeric
func (h *PlanHandler) PreviewFirstDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := request.PreviewFirstDateRequest{Cycle: q.Get("cycle")}

	if raw := q.Get("weeklyDay"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "weeklyDay must be an integer", err.Error())
			return
		}
		req.WeeklyDay = day
	}
	if raw := q.Get("monthlyDay"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "monthlyDay must be an integer", err.Error())
			return
		}
		req.MonthlyDay = day
	}

	firstDate, err := h.planService.PreviewFirstDate(req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"firstDate": firstDate})
}

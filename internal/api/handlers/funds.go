package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/request"
	"github.com/fvdberg/DCA-Planner-Backend/internal/api/response"
	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/service"
	"github.com/fvdberg/DCA-Planner-Backend/internal/validation"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// GetAllFunds handles GET requests to retrieve all funds.
//
// Endpoint: GET /api/fund
// Response: 200 OK with array of Fund
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) GetAllFunds(w http.ResponseWriter, _ *http.Request) {

	funds, err := h.fundService.GetAllFunds()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFunds.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, funds)
}

// GetFund handles GET requests to retrieve a single fund by ID.
//
// Endpoint: GET /api/fund/{uuid}
// Response: 200 OK with Fund
// Error: 400 Bad Request if the fund ID is invalid (validated by middleware)
// Error: 404 Not Found if the fund does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	fund, err := h.fundService.GetFund(fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFund.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, fund)
}

// CreateFund handles POST requests to register a new fund.
//
// Endpoint: POST /api/fund
// Request Body: CreateFundRequest (code, name)
// Response: 201 Created with Fund
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the fund code already exists
// Error: 500 Internal Server Error if creation fails
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.CreateFund(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateFundCode) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateFundCode.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateFund.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, fund)
}

package handlers

import (
	"net/http"

	"github.com/fvdberg/DCA-Planner-Backend/internal/api/response"
	"github.com/fvdberg/DCA-Planner-Backend/internal/apperrors"
	"github.com/fvdberg/DCA-Planner-Backend/internal/service"
)

// SystemHandler handles HTTP requests for system endpoints.
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler with the provided service dependency.
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health handles GET requests for the health probe.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with {"status": "ok"}
// Error: 503 Service Unavailable if the database is unreachable
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "unhealthy", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET requests for the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with {"version": "..."}
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	v := h.systemService.CheckVersion()
	if v == "" {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetVersionInfo.Error(), "")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"version": v})
}

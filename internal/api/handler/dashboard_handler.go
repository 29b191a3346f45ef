package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wardaashahid/biosync-api/internal/service"
	"github.com/wardaashahid/biosync-api/pkg/problem"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /v1/dashboard
// @Summary Get the dashboard summary
// @Description Compute the dashboard view model: latest entry, BMI with its band, the recent trend window and the family-history risk summary. An empty store yields a placeholder payload with has_data=false, never an error.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary "Dashboard view model"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		problem.InternalError("Failed to compute dashboard summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

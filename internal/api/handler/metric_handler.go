package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wardaashahid/biosync-api/internal/api/validation"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/service"
	"github.com/wardaashahid/biosync-api/pkg/problem"
)

type MetricHandler struct {
	service service.MetricService
}

func NewMetricHandler(service service.MetricService) *MetricHandler {
	return &MetricHandler{service: service}
}

// Create handles POST /v1/metrics
// @Summary Log a daily entry
// @Description Append one immutable day of biometrics. The server stamps the entry with a UUID and the current time; entries can never be edited or removed afterwards.
// @Tags metrics
// @Accept json
// @Produce json
// @Param request body domain.CreateMetricRequest true "Daily biometrics"
// @Success 201 {object} domain.MetricResponse "Entry appended"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Field validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /metrics [post]
func (h *MetricHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	metric, err := h.service.Log(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to log metrics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(metric.ToResponse())
}

// List handles GET /v1/metrics
// @Summary List metric history
// @Description Fetch the logged history newest first with cursor pagination.
// @Tags metrics
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.MetricListResponse "Metric history with pagination"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /metrics [get]
func (h *MetricHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseMetricFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list metrics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Latest handles GET /v1/metrics/latest
// @Summary Get the latest entry
// @Description Return the most recently appended entry. An empty store answers 204, the explicit no-data state.
// @Tags metrics
// @Produce json
// @Success 200 {object} domain.MetricResponse "Latest entry"
// @Success 204 "No entries logged yet"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /metrics/latest [get]
func (h *MetricHandler) Latest(w http.ResponseWriter, r *http.Request) {
	metric, err := h.service.Latest(r.Context())
	if err != nil {
		problem.InternalError("Failed to load latest entry").Write(w)
		return
	}

	if metric == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metric.ToResponse())
}

func parseMetricFilter(r *http.Request) (domain.MetricFilter, []problem.FieldError) {
	var filter domain.MetricFilter
	var fieldErrors []problem.FieldError

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

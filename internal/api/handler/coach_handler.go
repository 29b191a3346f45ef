package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wardaashahid/biosync-api/internal/api/validation"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/langfuse"
	"github.com/wardaashahid/biosync-api/internal/llm"
	"github.com/wardaashahid/biosync-api/internal/service"
	"github.com/wardaashahid/biosync-api/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// CoachHandler handles the LLM-backed coach endpoints.
type CoachHandler struct {
	coachService   service.CoachService
	langfuseClient langfuse.Client
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService, langfuseClient langfuse.Client) *CoachHandler {
	return &CoachHandler{
		coachService:   coachService,
		langfuseClient: langfuseClient,
	}
}

// Analyze handles POST /v1/coach/analysis
// @Summary Generate the daily wellness analysis
// @Description Snapshot the profile, latest entry, recent history, BMI and active risks, and ask the LLM for a structured wellness analysis. Needs at least one logged entry.
// @Tags coach
// @Produce json
// @Success 200 {object} domain.AnalysisResponse "Wellness analysis"
// @Failure 409 {object} problem.Problem "No metrics logged yet"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request or parse failure"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /coach/analysis [post]
func (h *CoachHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	result, err := h.coachService.Analyze(r.Context())
	if err != nil {
		writeCoachError(w, err, "Failed to generate analysis")
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Recipe handles POST /v1/recipes
// @Summary Generate a risk-tailored recipe
// @Description Turn a free-text craving plus the user snapshot into a recipe tailored to the BMI and the flagged family-history risks. Works on an empty store via a default weight.
// @Tags coach
// @Accept json
// @Produce json
// @Param request body domain.RecipeRequest true "Craving or preference"
// @Success 200 {object} domain.RecipeResponse "Tailored recipe"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Field validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request or parse failure"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /recipes [post]
func (h *CoachHandler) Recipe(w http.ResponseWriter, r *http.Request) {
	var req domain.RecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.coachService.Recipe(r.Context(), &req)
	if err != nil {
		writeCoachError(w, err, "Failed to generate recipe")
		return
	}

	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for coach feedback.
// @Description Request body for rating a previous coach response.
type FeedbackRequest struct {
	// Trace ID from the analysis or recipe response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The recommendation was useful."`
}

// Feedback handles POST /v1/coach/feedback
// @Summary Rate a previous coach response
// @Description Submit a rating and optional comment for a previous analysis or recipe.
// @Tags coach
// @Accept json
// @Produce json
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /coach/feedback [post]
func (h *CoachHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Errors are logged by the client but never fail the request.
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

func writeCoachError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNoMetrics):
		problem.Conflict("No metrics logged yet; log a daily entry first").Write(w)
	case errors.Is(err, llm.ErrLLMUnavailable):
		problem.Unavailable("LLM service is not configured").Write(w)
	case errors.Is(err, llm.ErrLLMRequest), errors.Is(err, llm.ErrLLMResponse):
		problem.BadGateway("Failed to generate a response from the LLM").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

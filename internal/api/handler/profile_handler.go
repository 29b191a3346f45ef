package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wardaashahid/biosync-api/internal/api/validation"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/service"
	"github.com/wardaashahid/biosync-api/pkg/problem"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/profile
// @Summary Get the current profile
// @Description Return the active profile. A default profile exists before any save.
// @Tags profile
// @Produce json
// @Success 200 {object} domain.ProfileResponse
// @Failure 500 {object} problem.Problem
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Current(r.Context())
	if err != nil {
		problem.InternalError("Failed to load profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Save handles PUT /v1/profile
// @Summary Replace the profile
// @Description Replace the profile wholesale. There is no partial save; the family-history record always carries all ten flags.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body domain.SaveProfileRequest true "Replacement profile"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Field validation failed"
// @Failure 500 {object} problem.Problem
// @Router /profile [put]
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Save(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to save profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// ToggleRisk handles POST /v1/profile/family-history/toggle
// @Summary Toggle one family-history flag
// @Description Flip exactly the named flag, leaving every other field untouched. Toggling the same flag twice restores the original record.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body domain.ToggleRiskRequest true "Flag to toggle"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Unknown flag"
// @Failure 500 {object} problem.Problem
// @Router /profile/family-history/toggle [post]
func (h *ProfileHandler) ToggleRisk(w http.ResponseWriter, r *http.Request) {
	var req domain.ToggleRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.ToggleRisk(r.Context(), req.Flag)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRiskFlag) {
			problem.ValidationError("Unknown family-history flag", []problem.FieldError{
				{Field: "flag", Message: "is not a tracked condition"},
			}).Write(w)
			return
		}
		problem.InternalError("Failed to toggle family-history flag").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

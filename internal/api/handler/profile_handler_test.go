package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wardaashahid/biosync-api/internal/domain"
)

func TestProfileHandler_Get(t *testing.T) {
	handler := NewProfileHandler(&MockProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Get() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp domain.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Alex Doe" {
		t.Errorf("Name = %q, want default profile", resp.Name)
	}
	if resp.RiskCount != 1 {
		t.Errorf("RiskCount = %d, want 1", resp.RiskCount)
	}
}

func TestProfileHandler_Save(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"name": "Jordan Smith", "age": 35, "height_m": 1.82, "gender": "Female", "family_history": {"cancer": true}}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"age": 35, "height_m": 1.82, "gender": "Female"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "zero height",
			body:           `{"name": "Jordan", "age": 35, "height_m": 0, "gender": "Female"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "negative height",
			body:           `{"name": "Jordan", "age": 35, "height_m": -1.7, "gender": "Female"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown gender",
			body:           `{"name": "Jordan", "age": 35, "height_m": 1.82, "gender": "Robot"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "age out of range",
			body:           `{"name": "Jordan", "age": 200, "height_m": 1.82, "gender": "Female"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(&MockProfileService{})

			req := httptest.NewRequest(http.MethodPut, "/v1/profile", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Save(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Save() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_ToggleRisk(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name:           "valid flag",
			body:           `{"flag": "diabetes"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing flag",
			body:           `{}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown flag rejected by validation",
			body:           `{"flag": "smallpox"}`,
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown flag rejected by service",
			body: `{"flag": "diabetes"}`,
			mockService: &MockProfileService{
				toggleRiskFunc: func(ctx context.Context, flag domain.RiskFlag) (*domain.UserProfile, error) {
					return nil, domain.ErrUnknownRiskFlag
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfileHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/profile/family-history/toggle", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.ToggleRisk(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("ToggleRisk() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestProfileHandler_ToggleRisk_ReturnsUpdatedProfile(t *testing.T) {
	handler := NewProfileHandler(&MockProfileService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/profile/family-history/toggle", bytes.NewBufferString(`{"flag": "diabetes"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ToggleRisk(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ToggleRisk() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.FamilyHistory.Diabetes {
		t.Error("FamilyHistory.Diabetes = false in response, want true")
	}
	if resp.RiskCount != 2 {
		t.Errorf("RiskCount = %d, want 2", resp.RiskCount)
	}
}

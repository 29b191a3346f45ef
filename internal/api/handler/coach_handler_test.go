package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/llm"
)

func TestCoachHandler_Analyze(t *testing.T) {
	tests := []struct {
		name           string
		mockService    *MockCoachService
		wantStatusCode int
	}{
		{
			name:           "success",
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "no metrics logged",
			mockService: &MockCoachService{
				analyzeFunc: func(ctx context.Context) (*domain.AnalysisResponse, error) {
					return nil, domain.ErrNoMetrics
				},
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "LLM not configured",
			mockService: &MockCoachService{
				analyzeFunc: func(ctx context.Context) (*domain.AnalysisResponse, error) {
					return nil, llm.ErrLLMUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name: "LLM request failure",
			mockService: &MockCoachService{
				analyzeFunc: func(ctx context.Context) (*domain.AnalysisResponse, error) {
					return nil, llm.ErrLLMRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name: "LLM returned malformed output",
			mockService: &MockCoachService{
				analyzeFunc: func(ctx context.Context) (*domain.AnalysisResponse, error) {
					return nil, llm.ErrLLMResponse
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCoachHandler(tt.mockService, &MockLangfuseClient{})

			req := httptest.NewRequest(http.MethodPost, "/v1/coach/analysis", nil)
			rec := httptest.NewRecorder()

			handler.Analyze(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Analyze() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCoachHandler_Recipe(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockCoachService
		wantStatusCode int
	}{
		{
			name:           "valid request",
			body:           `{"preference": "something with chickpeas"}`,
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing preference",
			body:           `{}`,
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "LLM not configured",
			body: `{"preference": "pasta"}`,
			mockService: &MockCoachService{
				recipeFunc: func(ctx context.Context, req *domain.RecipeRequest) (*domain.RecipeResponse, error) {
					return nil, llm.ErrLLMUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCoachHandler(tt.mockService, &MockLangfuseClient{})

			req := httptest.NewRequest(http.MethodPost, "/v1/recipes", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Recipe(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Recipe() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCoachHandler_Recipe_Body(t *testing.T) {
	handler := NewCoachHandler(&MockCoachService{}, &MockLangfuseClient{})

	req := httptest.NewRequest(http.MethodPost, "/v1/recipes", bytes.NewBufferString(`{"preference": "pasta"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Recipe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Recipe() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.RecipeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Recipe.Name == "" {
		t.Error("Recipe.Name is empty")
	}
	if len(resp.Recipe.Ingredients) == 0 {
		t.Error("Recipe.Ingredients is empty")
	}
}

func TestCoachHandler_Feedback(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantScores     int
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "abc123", "score": 4, "comment": "helpful"}`,
			wantStatusCode: http.StatusNoContent,
			wantScores:     1,
		},
		{
			name:           "valid without comment",
			body:           `{"trace_id": "abc123", "score": 1}`,
			wantStatusCode: http.StatusNoContent,
			wantScores:     1,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
			wantScores:     0,
		},
		{
			name:           "missing trace id",
			body:           `{"score": 4}`,
			wantStatusCode: http.StatusBadRequest,
			wantScores:     0,
		},
		{
			name:           "score too low",
			body:           `{"trace_id": "abc123", "score": 0}`,
			wantStatusCode: http.StatusBadRequest,
			wantScores:     0,
		},
		{
			name:           "score too high",
			body:           `{"trace_id": "abc123", "score": 6}`,
			wantStatusCode: http.StatusBadRequest,
			wantScores:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockLangfuseClient{}
			handler := NewCoachHandler(&MockCoachService{}, mockClient)

			req := httptest.NewRequest(http.MethodPost, "/v1/coach/feedback", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Feedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Feedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if len(mockClient.scores) != tt.wantScores {
				t.Errorf("CreateScore called %d times, want %d", len(mockClient.scores), tt.wantScores)
			}
		})
	}
}

func TestCoachHandler_Feedback_ScorePayload(t *testing.T) {
	mockClient := &MockLangfuseClient{}
	handler := NewCoachHandler(&MockCoachService{}, mockClient)

	req := httptest.NewRequest(http.MethodPost, "/v1/coach/feedback", bytes.NewBufferString(`{"trace_id": "trace-1", "score": 5, "comment": "spot on"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Feedback(rec, req)

	if len(mockClient.scores) != 1 {
		t.Fatalf("CreateScore called %d times, want 1", len(mockClient.scores))
	}
	score := mockClient.scores[0]
	if score.TraceID != "trace-1" {
		t.Errorf("TraceID = %q, want %q", score.TraceID, "trace-1")
	}
	if score.Name != "user_rating" {
		t.Errorf("Name = %q, want %q", score.Name, "user_rating")
	}
	if score.Value != 5 {
		t.Errorf("Value = %v, want 5", score.Value)
	}
	if score.Comment != "spot on" {
		t.Errorf("Comment = %q, want %q", score.Comment, "spot on")
	}
}

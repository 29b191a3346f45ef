package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "heart_rate", Message: "must be at least 30"}}
	p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/bad-request"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	p := Conflict("no metrics logged yet")
	p.Write(resp)

	if resp.Code != http.StatusConflict {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Title != "Conflict" || decoded.Detail != "no metrics logged yet" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestStatusConstructors(t *testing.T) {
	tests := []struct {
		p    *Problem
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{BadRequest("x"), http.StatusBadRequest},
		{ValidationError("x", nil), http.StatusUnprocessableEntity},
		{Unavailable("x"), http.StatusServiceUnavailable},
		{BadGateway("x"), http.StatusBadGateway},
		{InternalError("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if tt.p.Status != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.p.Title, tt.p.Status, tt.want)
		}
	}
}

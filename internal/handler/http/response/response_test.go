package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"days": 5})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Error != nil {
		t.Errorf("error = %+v, want nil", body.Error)
	}
	if body.Data == nil {
		t.Error("data = nil, want payload")
	}
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Leave request created successfully", nil)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success || body.Message == "" {
		t.Errorf("envelope = %+v, want success with message", body)
	}
}

func TestSuccessWithMetaEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{}, &Meta{Page: 2, Limit: 20, TotalItems: 45, TotalPages: 3})

	body := decodeEnvelope(t, rec)
	if body.Meta == nil || body.Meta.Page != 2 || body.Meta.TotalPages != 3 {
		t.Errorf("meta = %+v, want page 2 of 3", body.Meta)
	}
}

func TestErrorEnvelopes(t *testing.T) {
	cases := []struct {
		name       string
		emit       func(http.ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "Invalid request format", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "Invalid token") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "Administrator privilege required") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "Leave request not found") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "Leave request already processed") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "An unexpected error occurred") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c.emit(rec)

			if rec.Code != c.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, c.wantStatus)
			}
			body := decodeEnvelope(t, rec)
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Error == nil || body.Error.Code != c.wantCode {
				t.Errorf("error = %+v, want code %q", body.Error, c.wantCode)
			}
		})
	}
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"start_date": "start_date is required"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	body := decodeEnvelope(t, rec)
	if body.Error == nil || body.Error.Details["start_date"] == "" {
		t.Errorf("error = %+v, want field details", body.Error)
	}
}

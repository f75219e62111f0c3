package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendJsonResponse(t *testing.T) {
	recorder := httptest.NewRecorder()

	SendJsonResponse(recorder, map[string]int{"frames": 4})

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Expected application/json, got %s", contentType)
	}

	var body map[string]int
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["frames"] != 4 {
		t.Errorf("Expected frames 4, got %d", body["frames"])
	}
}

func TestSendJsonResponse_Unserializable(t *testing.T) {
	recorder := httptest.NewRecorder()

	SendJsonResponse(recorder, make(chan int))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", recorder.Code)
	}
}

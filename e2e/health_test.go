package e2e

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodGet, "/health", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["status"] != "ok" {
		t.Errorf("status = %v", result["status"])
	}

	services, ok := result["services"].(map[string]interface{})
	if !ok {
		t.Fatal("expected services object")
	}
	if services["spotify"] != true {
		t.Errorf("spotify configured = %v", services["spotify"])
	}
	if services["groq"] != true {
		t.Errorf("groq configured = %v", services["groq"])
	}
}

func TestTimestamp(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodGet, "/", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if _, ok := result["timestamp"].(float64); !ok {
		t.Errorf("expected numeric timestamp, got %v", result["timestamp"])
	}
}

func TestUnknownRoute_UsesErrorEnvelope(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodGet, "/api/nope", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)

	result := parseJSON(t, resp)
	if code := errorCode(t, result); code != "SERVICE_ERROR" {
		t.Errorf("error code = %q, want SERVICE_ERROR", code)
	}
}

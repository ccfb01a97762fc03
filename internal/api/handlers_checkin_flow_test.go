package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAscentCheckInFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerOwnerAndExtractCookie(t, app, "owner@example.com", "StrongPass1")
	intentID := createIntentForTest(t, app, authCookie, intentPayload("FOCUS"))

	eligibility := doJSON(t, app, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/intents/%d/eligibility", intentID), nil, authCookie), http.StatusOK)
	if eligibility["eligible"] != true {
		t.Fatalf("expected fresh intent to be eligible, got %v", eligibility)
	}

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/intents/%d/checkin", intentID), map[string]any{
		"response": "yes",
	}, authCookie), http.StatusOK)

	verdict, ok := body["verdict"].(map[string]any)
	if !ok {
		t.Fatalf("expected verdict object, got %v", body)
	}
	if verdict["success"] != true {
		t.Fatalf("expected success verdict, got %v", verdict)
	}
	if verdict["new_streak"] != float64(1) {
		t.Fatalf("expected streak 1, got %v", verdict["new_streak"])
	}
	if verdict["message"] != "Strength verified. Streak continues." {
		t.Fatalf("unexpected verdict message %v", verdict["message"])
	}

	reward, ok := body["reward"].(map[string]any)
	if !ok {
		t.Fatalf("expected reward object, got %v", body)
	}
	if reward["credits_awarded"] != float64(2) {
		t.Fatalf("expected 2 credits for ASCENT success, got %v", reward["credits_awarded"])
	}
	if reward["message"] != "+2 Integrity Credits Earned" {
		t.Fatalf("unexpected reward message %v", reward["message"])
	}

	eligibility = doJSON(t, app, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/intents/%d/eligibility", intentID), nil, authCookie), http.StatusOK)
	if eligibility["eligible"] != false {
		t.Fatalf("expected intent to be ineligible after today's check-in, got %v", eligibility)
	}

	doJSON(t, app, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/intents/%d/checkin", intentID), map[string]any{
		"response": "yes",
	}, authCookie), http.StatusConflict)
}

func TestAscentBreachTriggersInternalLock(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerOwnerAndExtractCookie(t, app, "owner@example.com", "StrongPass1")
	intentID := createIntentForTest(t, app, authCookie, intentPayload("FOCUS"))

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/intents/%d/checkin", intentID), map[string]any{
		"response": "no",
	}, authCookie), http.StatusOK)

	verdict, ok := body["verdict"].(map[string]any)
	if !ok {
		t.Fatalf("expected verdict object, got %v", body)
	}
	if verdict["success"] != false || verdict["new_streak"] != float64(0) {
		t.Fatalf("expected breach verdict with streak 0, got %v", verdict)
	}
	if verdict["message"] != "Breach detected. Resetting to Day 0." {
		t.Fatalf("unexpected breach message %v", verdict["message"])
	}

	penalty, ok := body["penalty"].(map[string]any)
	if !ok {
		t.Fatalf("expected penalty object for breach, got %v", body)
	}
	lock, ok := penalty["lock"].(map[string]any)
	if !ok {
		t.Fatalf("expected lock directive for INTERNAL stake, got %v", penalty)
	}
	if lock["lock_app"] != true {
		t.Fatalf("expected lock_app true, got %v", lock)
	}
	if lock["message"] != "App locked for reflection." {
		t.Fatalf("unexpected lock message %v", lock["message"])
	}
}

func TestFinancialBreachChargesFixedPenalty(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerOwnerAndExtractCookie(t, app, "owner@example.com", "StrongPass1")
	intentID := createIntentForTest(t, app, authCookie, map[string]any{
		"word":          "GYM",
		"roadmap":       "ASCENT",
		"stake":         "FINANCIAL",
		"duration_days": 30,
		"persona":       "DRILL_SERGEANT",
	})

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/intents/%d/checkin", intentID), map[string]any{
		"response": "no",
	}, authCookie), http.StatusOK)

	penalty, ok := body["penalty"].(map[string]any)
	if !ok {
		t.Fatalf("expected penalty object for breach, got %v", body)
	}
	transaction, ok := penalty["transaction"].(map[string]any)
	if !ok {
		t.Fatalf("expected payment transaction for FINANCIAL stake, got %v", penalty)
	}
	if transaction["success"] != true {
		t.Fatalf("expected successful charge, got %v", transaction)
	}
	if transaction["transaction_id"] == "" {
		t.Fatal("expected a transaction id")
	}
}

func TestLabCheckInRecordsDataPoint(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerOwnerAndExtractCookie(t, app, "owner@example.com", "StrongPass1")
	intentID := createIntentForTest(t, app, authCookie, map[string]any{
		"word":          "SLEEP",
		"roadmap":       "LAB",
		"stake":         "INTERNAL",
		"duration_days": 30,
		"persona":       "STOIC",
	})

	// A malformed proof must leave the intent untouched.
	doJSON(t, app, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/intents/%d/checkin", intentID), map[string]any{
		"proof": "abc",
	}, authCookie), http.StatusBadRequest)

	body := doJSON(t, app, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/intents/%d/checkin", intentID), map[string]any{
		"proof": 7.5,
	}, authCookie), http.StatusOK)

	verdict, ok := body["verdict"].(map[string]any)
	if !ok {
		t.Fatalf("expected verdict object, got %v", body)
	}
	if verdict["success"] != true || verdict["data_point"] != float64(7.5) {
		t.Fatalf("expected correlated data point 7.5, got %v", verdict)
	}
	if verdict["message"] != "Data point correlated." {
		t.Fatalf("unexpected verdict message %v", verdict["message"])
	}

	intent, ok := body["intent"].(map[string]any)
	if !ok {
		t.Fatalf("expected intent object, got %v", body)
	}
	history, ok := intent["history"].([]any)
	if !ok || len(history) != 1 {
		t.Fatalf("expected exactly one history entry, got %v", intent["history"])
	}
}

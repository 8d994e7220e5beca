// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tungdo8842/django-polls/cliparse"
	"github.com/tungdo8842/django-polls/db"
	"github.com/tungdo8842/django-polls/models"
)

// SetupTestStore creates a fresh in-memory SQLite database with the full schema
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db.NewStore(conn)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  ":memory:",
		AdminKeySalt: "test-admin-salt",
	}
}

// CreateTestQuestion creates a question published the given number of
// 24-hour days from now (negative for past, positive for future)
func CreateTestQuestion(t *testing.T, store *db.Store, text string, days int, now time.Time) models.Question {
	t.Helper()

	q, err := store.CreateQuestion(context.Background(), text, now.Add(time.Duration(days)*db.Day))
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q
}

// AddTestChoice adds a choice to a question and returns it
func AddTestChoice(t *testing.T, store *db.Store, questionID, text string) models.Choice {
	t.Helper()

	c, err := store.AddChoice(context.Background(), questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return c
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

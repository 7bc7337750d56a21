// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/cliparse"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/db"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

// TestDBURL opens a private in-memory SQLite database per connection pool
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// FixedNow is the clock used by test services so ages are stable
var FixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.SQLite, TestDBURL, time.Second)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5080,
		DatabaseURL:  TestDBURL,
		DatabaseType: string(db.SQLite),
		DBWait:       time.Second,
	}
}

// Rating returns a pointer for use in submission literals
func Rating(v int) *int {
	return &v
}

// NewSubmission returns a valid submission that tests can tweak
func NewSubmission(name string, dob models.Date, foods ...string) models.SurveySubmission {
	return models.SurveySubmission{
		FullName:       name,
		Email:          "respondent@example.com",
		DateOfBirth:    dob,
		ContactNumbers: "0821234567",
		FavoriteFoods:  foods,
	}
}

// InsertTestSurvey writes a subject and its attributes straight through
// the store and returns the new survey id
func InsertTestSurvey(t *testing.T, conn *sql.DB, subject models.Subject, attrs []models.Attribute) int64 {
	t.Helper()

	if subject.SubmittedAt.IsZero() {
		subject.SubmittedAt = FixedNow
	}
	id, err := db.NewSQLStore(conn).CreateSurvey(context.Background(), subject, attrs)
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
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
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

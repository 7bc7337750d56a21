// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/middleware"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/survey"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/testutil"
)

var errStoreDown = errors.New("store down")

// brokenStore fails every call
type brokenStore struct{}

func (brokenStore) CreateSurvey(context.Context, models.Subject, []models.Attribute) (int64, error) {
	return 0, errStoreDown
}

func (brokenStore) GetSurvey(context.Context, int64) (models.SubjectWithAttributes, error) {
	return models.SubjectWithAttributes{}, errStoreDown
}

func (brokenStore) ListSurveys(context.Context) ([]models.SubjectWithAttributes, error) {
	return nil, errStoreDown
}

func (brokenStore) ListSubjects(context.Context) ([]models.Subject, error) {
	return nil, errStoreDown
}

func (brokenStore) ListAttributes(context.Context, survey.AttributeFilter) ([]models.Attribute, error) {
	return nil, errStoreDown
}

func (brokenStore) CountSubjects(context.Context) (int, error) {
	return 0, errStoreDown
}

func (brokenStore) DeleteSurvey(context.Context, int64) error {
	return errStoreDown
}

// captureLogs routes the default slog logger into a buffer for one test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// TestServerErrorsLogRequestID verifies every 500 path logs the request id
func TestServerErrorsLogRequestID(t *testing.T) {
	h := NewSurveyHandler(survey.NewService(brokenStore{}))

	tests := []struct {
		name    string
		method  string
		path    string
		id      string
		handler http.HandlerFunc
		body    interface{}
	}{
		{"submit", "POST", "/api/survey/submit", "", h.Submit, testutil.NewSubmission("A", models.NewDate(1990, 1, 1))},
		{"get all", "GET", "/api/survey/all", "", h.GetAll, nil},
		{"get by id", "GET", "/api/survey/1", "1", h.GetByID, nil},
		{"statistics", "GET", "/api/survey/statistics", "", h.Statistics, nil},
		{"delete", "DELETE", "/api/survey/1", "1", h.Delete, nil},
		{"export", "GET", "/api/survey/export", "", h.Export, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			reqID := "req-" + tt.name

			req := testutil.MakeRequest(tt.method, tt.path, tt.body, map[string]string{"X-Request-ID": reqID})
			if tt.id != "" {
				req.SetPathValue("id", tt.id)
			}
			w := httptest.NewRecorder()

			middleware.WithLogging(tt.handler)(w, req)

			testutil.AssertStatus(t, w, http.StatusInternalServerError)

			found := false
			dec := json.NewDecoder(logs)
			for dec.More() {
				var entry map[string]any
				if err := dec.Decode(&entry); err != nil {
					t.Fatalf("Failed to decode log line: %v", err)
				}
				if entry["level"] == "ERROR" {
					found = true
					if entry["req_id"] != reqID {
						t.Errorf("Expected error log req_id %q, got %v (%v)", reqID, entry["req_id"], entry["msg"])
					}
				}
			}
			if !found {
				t.Error("Expected an error log entry")
			}
		})
	}
}

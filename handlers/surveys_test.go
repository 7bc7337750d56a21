// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/db"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/export"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/survey"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/testutil"
)

func newTestHandler(t *testing.T) (*SurveyHandler, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	svc := survey.NewService(db.NewSQLStore(conn), survey.WithClock(func() time.Time { return testutil.FixedNow }))
	return NewSurveyHandler(svc), conn
}

// submit posts a submission and returns the new id, failing on non-200
func submit(t *testing.T, h *SurveyHandler, sub models.SurveySubmission) int64 {
	t.Helper()
	w := httptest.NewRecorder()
	h.Submit(w, testutil.MakeRequest("POST", "/api/survey/submit", sub, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Submit returned %d: %s", w.Code, w.Body.String())
	}

	var resp models.SubmitSurveyResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.SurveyID
}

func getByID(h *SurveyHandler, id string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("GET", "/api/survey/"+id, nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.GetByID(w, req)
	return w
}

func getStatistics(t *testing.T, h *SurveyHandler) models.SurveyStatistics {
	t.Helper()
	w := httptest.NewRecorder()
	h.Statistics(w, testutil.MakeRequest("GET", "/api/survey/statistics", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.SurveyStatistics
	testutil.AssertJSON(t, w, &stats)
	return stats
}

func TestSubmit(t *testing.T) {
	h, _ := newTestHandler(t)

	valid := testutil.NewSubmission("Thandi Nkosi", models.NewDate(1995, 4, 12), "Pizza")
	valid.MovieRating = testutil.Rating(4)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedField  string
	}{
		{
			name:           "valid submission",
			body:           mustJSON(t, valid),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid json",
			body:           `{"fullName": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing full name",
			body:           `{"email":"a@b.co","dateOfBirth":"1990-01-01","contactNumbers":"1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "fullName",
		},
		{
			name:           "bad email",
			body:           `{"fullName":"A","email":"nope","dateOfBirth":"1990-01-01","contactNumbers":"1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "email",
		},
		{
			name:           "rating out of range",
			body:           `{"fullName":"A","email":"a@b.co","dateOfBirth":"1990-01-01","contactNumbers":"1","tvRating":6}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "tvRating",
		},
		{
			name:           "future date of birth",
			body:           `{"fullName":"A","email":"a@b.co","dateOfBirth":"2030-01-01","contactNumbers":"1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedField:  "dateOfBirth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/survey/submit", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Submit(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.SubmitSurveyResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.SurveyID <= 0 {
					t.Errorf("Expected positive surveyId, got %d", resp.SurveyID)
				}
				if resp.Message != "Survey submitted successfully" {
					t.Errorf("Unexpected message %q", resp.Message)
				}
				return
			}

			var errResp models.ErrorResponse
			testutil.AssertJSON(t, w, &errResp)
			if errResp.Field != tt.expectedField {
				t.Errorf("Expected field %q, got %q", tt.expectedField, errResp.Field)
			}
		})
	}
}

func TestSubmitAndGet_RoundTrip(t *testing.T) {
	h, _ := newTestHandler(t)

	sub := testutil.NewSubmission("Sipho Dlamini", models.NewDate(1988, 11, 2), "Pizza", "Pap and Wors", "Pizza")
	sub.MovieRating = testutil.Rating(5)
	sub.EatOutRating = testutil.Rating(2)

	id := submit(t, h, sub)

	w := getByID(h, strconv.FormatInt(id, 10))
	testutil.AssertStatus(t, w, http.StatusOK)

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if raw["dateOfBirth"] != "1988-11-02" {
		t.Errorf("Expected dateOfBirth '1988-11-02', got %v", raw["dateOfBirth"])
	}
	if raw["radioRating"] != nil || raw["tvRating"] != nil {
		t.Errorf("Expected unanswered ratings to be null, got radio=%v tv=%v", raw["radioRating"], raw["tvRating"])
	}

	var got models.SurveyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.SurveyID != id || got.FullName != "Sipho Dlamini" || got.Email != sub.Email {
		t.Errorf("Unexpected survey %+v", got)
	}
	// Duplicate foods collapse to one
	if len(got.FavoriteFoods) != 2 {
		t.Errorf("Expected 2 foods, got %v", got.FavoriteFoods)
	}
	if got.MovieRating == nil || *got.MovieRating != 5 {
		t.Errorf("Expected movieRating 5, got %v", got.MovieRating)
	}
	if got.EatOutRating == nil || *got.EatOutRating != 2 {
		t.Errorf("Expected eatOutRating 2, got %v", got.EatOutRating)
	}
	if !got.SubmissionDate.Equal(testutil.FixedNow) {
		t.Errorf("Expected submissionDate %v, got %v", testutil.FixedNow, got.SubmissionDate)
	}
}

func TestGetByID(t *testing.T) {
	h, _ := newTestHandler(t)
	id := submit(t, h, testutil.NewSubmission("A", models.NewDate(1990, 1, 1)))

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"existing survey", strconv.FormatInt(id, 10), http.StatusOK},
		{"missing survey", "9999", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusBadRequest},
		{"zero id", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getByID(h, tt.id)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestGetAll(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetAll(w, testutil.MakeRequest("GET", "/api/survey/all", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("Expected '[]', got %q", body)
		}
	})

	first := submit(t, h, testutil.NewSubmission("First", models.NewDate(1990, 1, 1), "Pasta"))
	second := submit(t, h, testutil.NewSubmission("Second", models.NewDate(1991, 1, 1)))

	t.Run("lists every survey", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetAll(w, testutil.MakeRequest("GET", "/api/survey/all", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var all []models.SurveyResponse
		testutil.AssertJSON(t, w, &all)
		if len(all) != 2 {
			t.Fatalf("Expected 2 surveys, got %d", len(all))
		}
		byID := map[int64]models.SurveyResponse{}
		for _, s := range all {
			byID[s.SurveyID] = s
		}
		if byID[first].FullName != "First" || len(byID[first].FavoriteFoods) != 1 {
			t.Errorf("Unexpected first survey %+v", byID[first])
		}
		if byID[second].FavoriteFoods == nil || len(byID[second].FavoriteFoods) != 0 {
			t.Errorf("Expected empty food list for second survey, got %v", byID[second].FavoriteFoods)
		}
	})
}

func TestStatistics_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	stats := getStatistics(t, h)
	if stats != (models.SurveyStatistics{}) {
		t.Errorf("Expected zero statistics, got %+v", stats)
	}
}

func TestStatistics(t *testing.T) {
	h, _ := newTestHandler(t)

	// FixedNow is in 2025
	people := []struct {
		dob   models.Date
		foods []string
		movie *int
	}{
		{models.NewDate(2005, 3, 1), []string{"Pizza", "Pasta"}, testutil.Rating(4)},
		{models.NewDate(1995, 8, 1), []string{"Pizza"}, testutil.Rating(5)},
		{models.NewDate(1985, 12, 31), []string{"Pap and Wors"}, testutil.Rating(3)},
		{models.NewDate(1995, 1, 1), nil, nil},
	}
	for i, p := range people {
		sub := testutil.NewSubmission("Person "+strconv.Itoa(i), p.dob, p.foods...)
		sub.MovieRating = p.movie
		submit(t, h, sub)
	}

	stats := getStatistics(t, h)

	if stats.TotalSurveys != 4 {
		t.Errorf("Expected 4 surveys, got %d", stats.TotalSurveys)
	}
	// ages 20, 30, 40, 30
	if stats.AverageAge != 30.0 {
		t.Errorf("Expected average age 30.0, got %v", stats.AverageAge)
	}
	if stats.OldestAge != 40 || stats.YoungestAge != 20 {
		t.Errorf("Expected oldest 40 youngest 20, got %d %d", stats.OldestAge, stats.YoungestAge)
	}
	if stats.PizzaPercentage != 50.0 {
		t.Errorf("Expected pizza 50.0, got %v", stats.PizzaPercentage)
	}
	if stats.PastaPercentage != 25.0 || stats.PapAndWorsPercentage != 25.0 {
		t.Errorf("Expected pasta and pap 25.0, got %v %v", stats.PastaPercentage, stats.PapAndWorsPercentage)
	}
	if stats.MovieAverageRating != 4.0 {
		t.Errorf("Expected movie average 4.0, got %v", stats.MovieAverageRating)
	}
	if stats.RadioAverageRating != 0 || stats.TVAverageRating != 0 {
		t.Errorf("Expected unanswered averages to be 0, got radio=%v tv=%v", stats.RadioAverageRating, stats.TVAverageRating)
	}
}

func TestDelete(t *testing.T) {
	h, conn := newTestHandler(t)

	sub := testutil.NewSubmission("Gone Soon", models.NewDate(1990, 1, 1), "Pizza", "Pasta")
	sub.TVRating = testutil.Rating(1)
	id := submit(t, h, sub)
	idStr := strconv.FormatInt(id, 10)

	del := func(raw string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/api/survey/"+raw, nil, nil)
		req.SetPathValue("id", raw)
		w := httptest.NewRecorder()
		h.Delete(w, req)
		return w
	}

	w := del(idStr)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Options go with the subject
	var remaining int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM options WHERE survey_id = $1`, id).Scan(&remaining); err != nil {
		t.Fatalf("Failed to count options: %v", err)
	}
	if remaining != 0 {
		t.Errorf("Expected options to cascade, %d remain", remaining)
	}

	testutil.AssertStatus(t, getByID(h, idStr), http.StatusNotFound)
	testutil.AssertStatus(t, del(idStr), http.StatusNotFound)
	testutil.AssertStatus(t, del("x"), http.StatusBadRequest)
}

func TestExport(t *testing.T) {
	h, _ := newTestHandler(t)
	submit(t, h, testutil.NewSubmission("Export Me", models.NewDate(1990, 1, 1), "Pizza"))

	w := httptest.NewRecorder()
	h.Export(w, testutil.MakeRequest("GET", "/api/survey/export", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Unexpected Content-Type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "surveys.xlsx") {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}

	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("Failed to open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(export.SurveysSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 2 || rows[1][1] != "Export Me" {
		t.Errorf("Unexpected exported rows %v", rows)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

const (
	SurveysSheet = "Surveys"
	SummarySheet = "Summary"
)

// SurveyHeader is the first row of the Surveys sheet.
var SurveyHeader = []string{
	"Survey ID", "Full Name", "Email", "Date of Birth", "Contact Numbers",
	"Submitted", "Favorite Foods", "Movies", "Radio", "Eat Out", "TV",
}

// WriteWorkbook renders every survey and the statistics block as an XLSX
// workbook. now anchors the relative "last submission" label.
func WriteWorkbook(w io.Writer, surveys []models.SurveyResponse, stats models.SurveyStatistics, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SurveysSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSurveys(f, surveys); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummary(f, surveys, stats, now); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSurveys(f *excelize.File, surveys []models.SurveyResponse) error {
	header := make([]interface{}, len(SurveyHeader))
	for i, h := range SurveyHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SurveysSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range surveys {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			s.SurveyID,
			s.FullName,
			s.Email,
			s.DateOfBirth.Format(models.DateLayout),
			s.ContactNumbers,
			s.SubmissionDate.Format(time.RFC3339),
			strings.Join(s.FavoriteFoods, ", "),
			ratingCell(s.MovieRating),
			ratingCell(s.RadioRating),
			ratingCell(s.EatOutRating),
			ratingCell(s.TVRating),
		}
		if err := f.SetSheetRow(SurveysSheet, cell, &row); err != nil {
			return fmt.Errorf("write survey %d: %w", s.SurveyID, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, surveys []models.SurveyResponse, stats models.SurveyStatistics, now time.Time) error {
	rows := [][]interface{}{
		{"Total surveys", humanize.Comma(int64(stats.TotalSurveys))},
		{"Average age", stats.AverageAge},
		{"Oldest person", stats.OldestAge},
		{"Youngest person", stats.YoungestAge},
		{"Pizza (%)", stats.PizzaPercentage},
		{"Pasta (%)", stats.PastaPercentage},
		{"Pap and Wors (%)", stats.PapAndWorsPercentage},
		{"Movies (avg)", stats.MovieAverageRating},
		{"Radio (avg)", stats.RadioAverageRating},
		{"Eat out (avg)", stats.EatOutAverageRating},
		{"TV (avg)", stats.TVAverageRating},
		{"Last submission", lastSubmission(surveys, now)},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %q: %w", row[0], err)
		}
	}
	return nil
}

// lastSubmission renders the newest submission time relative to now,
// e.g. "3 hours ago".
func lastSubmission(surveys []models.SurveyResponse, now time.Time) string {
	var latest time.Time
	for _, s := range surveys {
		if s.SubmissionDate.After(latest) {
			latest = s.SubmissionDate
		}
	}
	if latest.IsZero() {
		return "never"
	}
	return humanize.RelTime(latest, now, "ago", "from now")
}

func ratingCell(r *int) interface{} {
	if r == nil {
		return ""
	}
	return *r
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "github.com/Siyabonga-Makhubu/Survey-Assessment/models"

// FoodPrefix marks an attribute row as a selected food.
const FoodPrefix = "FavoriteFood:"

// StatementKey names one Likert statement. It is stored verbatim as the
// attribute name of the rating row.
type StatementKey string

const (
	MovieRating  StatementKey = "MovieRating"
	RadioRating  StatementKey = "RadioRating"
	EatOutRating StatementKey = "EatOutRating"
	TVRating     StatementKey = "TVRating"
)

// Statement ties a statement key to the submission, response and
// statistics fields that carry it.
type Statement struct {
	Key   StatementKey
	Label string

	submitted func(*models.SurveySubmission) *int
	answer    func(*models.SurveyResponse) **int
	average   func(*models.SurveyStatistics) *float64
}

// TrackedFood is a food label reported as a percentage in statistics.
type TrackedFood struct {
	Label string

	percentage func(*models.SurveyStatistics) *float64
}

// Statements is the fixed set of rated statements, in display order.
var Statements = []Statement{
	{
		Key:       MovieRating,
		Label:     "I like to watch movies",
		submitted: func(s *models.SurveySubmission) *int { return s.MovieRating },
		answer:    func(r *models.SurveyResponse) **int { return &r.MovieRating },
		average:   func(st *models.SurveyStatistics) *float64 { return &st.MovieAverageRating },
	},
	{
		Key:       RadioRating,
		Label:     "I like to listen to radio",
		submitted: func(s *models.SurveySubmission) *int { return s.RadioRating },
		answer:    func(r *models.SurveyResponse) **int { return &r.RadioRating },
		average:   func(st *models.SurveyStatistics) *float64 { return &st.RadioAverageRating },
	},
	{
		Key:       EatOutRating,
		Label:     "I like to eat out",
		submitted: func(s *models.SurveySubmission) *int { return s.EatOutRating },
		answer:    func(r *models.SurveyResponse) **int { return &r.EatOutRating },
		average:   func(st *models.SurveyStatistics) *float64 { return &st.EatOutAverageRating },
	},
	{
		Key:       TVRating,
		Label:     "I like to watch TV",
		submitted: func(s *models.SurveySubmission) *int { return s.TVRating },
		answer:    func(r *models.SurveyResponse) **int { return &r.TVRating },
		average:   func(st *models.SurveyStatistics) *float64 { return &st.TVAverageRating },
	},
}

// TrackedFoods is the closed set of foods aggregated into percentages.
// Any other food label is still stored and returned per survey.
var TrackedFoods = []TrackedFood{
	{Label: "Pizza", percentage: func(st *models.SurveyStatistics) *float64 { return &st.PizzaPercentage }},
	{Label: "Pasta", percentage: func(st *models.SurveyStatistics) *float64 { return &st.PastaPercentage }},
	{Label: "Pap and Wors", percentage: func(st *models.SurveyStatistics) *float64 { return &st.PapAndWorsPercentage }},
}

// LookupStatement returns the registered statement for key.
func LookupStatement(key StatementKey) (Statement, bool) {
	for _, st := range Statements {
		if st.Key == key {
			return st, true
		}
	}
	return Statement{}, false
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

// SurveySubmission is the already-parsed survey form. Ratings are optional;
// a nil rating means the statement was left unanswered.
type SurveySubmission struct {
	FullName       string   `json:"fullName" validate:"required,max=100"`
	Email          string   `json:"email" validate:"required,email,max=100"`
	DateOfBirth    Date     `json:"dateOfBirth"`
	ContactNumbers string   `json:"contactNumbers" validate:"required,max=20"`
	FavoriteFoods  []string `json:"favoriteFoods" validate:"dive,required,max=87"`
	MovieRating    *int     `json:"movieRating,omitempty" validate:"omitempty,min=1,max=5"`
	RadioRating    *int     `json:"radioRating,omitempty" validate:"omitempty,min=1,max=5"`
	EatOutRating   *int     `json:"eatOutRating,omitempty" validate:"omitempty,min=1,max=5"`
	TVRating       *int     `json:"tvRating,omitempty" validate:"omitempty,min=1,max=5"`
}

// Response types

type SubmitSurveyResponse struct {
	SurveyID int64  `json:"surveyId"`
	Message  string `json:"message"`
}

// SurveyResponse is a single survey as read back from storage.
// Unanswered ratings are null, never zero.
type SurveyResponse struct {
	SurveyID       int64     `json:"surveyId"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	DateOfBirth    Date      `json:"dateOfBirth"`
	ContactNumbers string    `json:"contactNumbers"`
	SubmissionDate time.Time `json:"submissionDate"`
	FavoriteFoods  []string  `json:"favoriteFoods"`
	MovieRating    *int      `json:"movieRating"`
	RadioRating    *int      `json:"radioRating"`
	EatOutRating   *int      `json:"eatOutRating"`
	TVRating       *int      `json:"tvRating"`
}

type SurveyStatistics struct {
	TotalSurveys         int     `json:"totalSurveys"`
	AverageAge           float64 `json:"averageAge"`
	OldestAge            int     `json:"oldestAge"`
	YoungestAge          int     `json:"youngestAge"`
	PizzaPercentage      float64 `json:"pizzaPercentage"`
	PastaPercentage      float64 `json:"pastaPercentage"`
	PapAndWorsPercentage float64 `json:"papAndWorsPercentage"`
	MovieAverageRating   float64 `json:"movieAverageRating"`
	RadioAverageRating   float64 `json:"radioAverageRating"`
	EatOutAverageRating  float64 `json:"eatOutAverageRating"`
	TVAverageRating      float64 `json:"tvAverageRating"`
}

// Storage rows

// Subject is one row of personal_details.
type Subject struct {
	ID             int64
	FullName       string
	Email          string
	DateOfBirth    time.Time
	ContactNumbers string
	SubmittedAt    time.Time
}

// Attribute is one row of options, keyed by (SurveyID, Name).
// Rating is nil for presence-only attributes.
type Attribute struct {
	SurveyID int64
	Name     string
	Rating   *int
}

type SubjectWithAttributes struct {
	Subject    Subject
	Attributes []Attribute
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

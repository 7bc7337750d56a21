// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and storage row types for the API.

# Request Types

  - SurveySubmission: fullName, email, dateOfBirth, contactNumbers,
    favoriteFoods, movieRating, radioRating, eatOutRating, tvRating

Ratings are *int; a missing or null rating means "not answered".

# Response Types

  - SubmitSurveyResponse: surveyId, message
  - SurveyResponse: one survey rebuilt from storage, ratings null when absent
  - SurveyStatistics: totals, ages, food percentages, rating averages
  - ErrorResponse: error, message, field

# Storage Rows

  - Subject: one personal_details row
  - Attribute: one options row (name plus optional rating)
  - SubjectWithAttributes: a subject and all of its attributes

# Dates

Date wraps time.Time and travels as "2006-01-02":

	dob := models.NewDate(1990, time.March, 4)
*/
package models

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey API.

# Handler Types

SurveyHandler wraps a *survey.Service:

	surveyHandler := handlers.NewSurveyHandler(svc)

# Endpoints

	POST   /api/survey/submit     → Submit (returns surveyId)
	GET    /api/survey/all        → GetAll
	GET    /api/survey/{id}       → GetByID
	GET    /api/survey/statistics → Statistics
	GET    /api/survey/export     → Export (XLSX download)
	DELETE /api/survey/{id}       → Delete (204)

# Error Mapping

  - malformed JSON or a non-numeric id: 400
  - *survey.ValidationError: 400 with the offending field
  - survey.ErrNotFound: 404
  - anything else: 500, logged with slog
*/
package handlers

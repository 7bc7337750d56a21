// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey API.

	mux := router.NewRouter(svc)

# Endpoints

	GET    /health                - liveness, returns "OK"
	GET    /                      - banner
	POST   /api/survey/submit     - store a submission
	GET    /api/survey/all        - every survey
	GET    /api/survey/statistics - aggregate statistics
	GET    /api/survey/export     - XLSX workbook
	GET    /api/survey/{id}       - one survey
	DELETE /api/survey/{id}       - delete a survey

Survey routes are wrapped in middleware.WithLogging. CORS is applied by the
caller around the whole mux.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (req_id, method, path, remote) and completion
(status, duration_ms). The request id is taken from X-Request-ID or
generated with uuid, echoed in the response header, and available to
handlers through RequestID(r.Context()).

# CORS Middleware

Enable cross-origin requests for the survey frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin)(mux),
	}

Allows methods GET, POST, DELETE, OPTIONS with headers Content-Type and
X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "message")
	middleware.FieldErrorResponse(w, "email", "is required")

Parse JSON request bodies:

	var req models.SurveySubmission
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware

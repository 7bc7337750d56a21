// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/handlers"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/middleware"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/survey"
)

func NewRouter(svc *survey.Service) *http.ServeMux {
	mux := http.NewServeMux()

	surveyHandler := handlers.NewSurveyHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Literal segments take precedence over {id}
	mux.HandleFunc("POST /api/survey/submit", middleware.WithLogging(surveyHandler.Submit))
	mux.HandleFunc("GET /api/survey/all", middleware.WithLogging(surveyHandler.GetAll))
	mux.HandleFunc("GET /api/survey/statistics", middleware.WithLogging(surveyHandler.Statistics))
	mux.HandleFunc("GET /api/survey/export", middleware.WithLogging(surveyHandler.Export))
	mux.HandleFunc("GET /api/survey/{id}", middleware.WithLogging(surveyHandler.GetByID))
	mux.HandleFunc("DELETE /api/survey/{id}", middleware.WithLogging(surveyHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey API v1"))
	})

	return mux
}

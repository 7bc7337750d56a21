// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/export"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/middleware"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/survey"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SurveyHandler struct {
	svc *survey.Service
}

func NewSurveyHandler(svc *survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

// Submit handles POST /api/survey/submit
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SurveySubmission
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		var verr *survey.ValidationError
		if errors.As(err, &verr) {
			middleware.FieldErrorResponse(w, verr.Field, verr.Message)
			return
		}
		slog.Error("failed to store survey", "req_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitSurveyResponse{
		SurveyID: id,
		Message:  "Survey submitted successfully",
	})
}

// GetAll handles GET /api/survey/all
func (h *SurveyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list surveys", "req_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load surveys")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, surveys)
}

// GetByID handles GET /api/survey/{id}
func (h *SurveyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := surveyID(w, r)
	if !ok {
		return
	}

	resp, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, survey.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to load survey", "req_id", middleware.RequestID(r.Context()), "survey_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Statistics handles GET /api/survey/statistics
func (h *SurveyHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		slog.Error("failed to compute statistics", "req_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// Delete handles DELETE /api/survey/{id}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := surveyID(w, r)
	if !ok {
		return
	}

	err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, survey.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete survey", "req_id", middleware.RequestID(r.Context()), "survey_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete survey")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/survey/export
func (h *SurveyHandler) Export(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list surveys for export", "req_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export surveys")
		return
	}
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		slog.Error("failed to compute statistics for export", "req_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export surveys")
		return
	}

	// Render fully before writing so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, surveys, *stats, h.svc.Now()); err != nil {
		slog.Error("failed to render workbook", "req_id", middleware.RequestID(r.Context()), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export surveys")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="surveys.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to stream workbook", "req_id", middleware.RequestID(r.Context()), "error", err)
	}
}

// surveyID parses the {id} path value, writing a 400 when it is not a
// positive integer.
func surveyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid survey id")
		return 0, false
	}
	return id, true
}

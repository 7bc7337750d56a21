// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
)

// AttributeFilter narrows ListAttributes. An empty filter matches every row;
// Name takes precedence over Prefix.
type AttributeFilter struct {
	Prefix string
	Name   string
}

// Store is the persistence the service needs. CreateSurvey must write the
// subject and all of its attributes atomically.
type Store interface {
	CreateSurvey(ctx context.Context, subject models.Subject, attrs []models.Attribute) (int64, error)
	GetSurvey(ctx context.Context, id int64) (models.SubjectWithAttributes, error)
	ListSurveys(ctx context.Context) ([]models.SubjectWithAttributes, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	ListAttributes(ctx context.Context, filter AttributeFilter) ([]models.Attribute, error)
	CountSubjects(ctx context.Context) (int, error)
	DeleteSurvey(ctx context.Context, id int64) error
}

// Service hosts the submission, read-back and statistics workflows.
type Service struct {
	store Store
	now   func() time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used for submission timestamps,
// date-of-birth checks and ages.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates and stores a submission, returning the new survey id.
func (s *Service) Submit(ctx context.Context, sub models.SurveySubmission) (int64, error) {
	now := s.now()
	if err := Validate(sub, now); err != nil {
		return 0, err
	}

	subject, attrs := Normalize(sub, now)
	id, err := s.store.CreateSurvey(ctx, subject, attrs)
	if err != nil {
		return 0, fmt.Errorf("create survey: %w", err)
	}

	slog.Info("survey stored", "survey_id", id, "attributes", len(attrs))
	return id, nil
}

// Get returns one survey, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*models.SurveyResponse, error) {
	row, err := s.store.GetSurvey(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get survey %d: %w", id, err)
	}

	resp := Reconstruct(row.Subject, row.Attributes)
	return &resp, nil
}

// List returns every stored survey.
func (s *Service) List(ctx context.Context) ([]models.SurveyResponse, error) {
	rows, err := s.store.ListSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	out := make([]models.SurveyResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, Reconstruct(row.Subject, row.Attributes))
	}
	return out, nil
}

// Statistics aggregates over the full dataset. No surveys is not an error.
func (s *Service) Statistics(ctx context.Context) (*models.SurveyStatistics, error) {
	total, err := s.store.CountSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("count surveys: %w", err)
	}
	if total == 0 {
		return &models.SurveyStatistics{}, nil
	}

	subjects, err := s.store.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	ds := Dataset{
		Total:      total,
		BirthDates: make([]time.Time, 0, len(subjects)),
		RatingRows: make(map[StatementKey][]models.Attribute, len(Statements)),
	}
	for _, subj := range subjects {
		ds.BirthDates = append(ds.BirthDates, subj.DateOfBirth)
	}

	ds.FoodRows, err = s.store.ListAttributes(ctx, AttributeFilter{Prefix: FoodPrefix})
	if err != nil {
		return nil, fmt.Errorf("list food attributes: %w", err)
	}

	for _, st := range Statements {
		rows, err := s.store.ListAttributes(ctx, AttributeFilter{Name: string(st.Key)})
		if err != nil {
			return nil, fmt.Errorf("list %s attributes: %w", st.Key, err)
		}
		ds.RatingRows[st.Key] = rows
	}

	stats := Compute(ds, s.now())
	return &stats, nil
}

// Delete removes a survey and, by cascade, all of its attributes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteSurvey(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete survey %d: %w", id, err)
	}

	slog.Info("survey deleted", "survey_id", id)
	return nil
}

// Now reports the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Siyabonga-Makhubu/Survey-Assessment/models"
	"github.com/Siyabonga-Makhubu/Survey-Assessment/survey"
)

// SQLStore implements survey.Store on top of database/sql. Queries use $N
// placeholders, which both lib/pq and SQLite accept.
type SQLStore struct {
	db *sql.DB
}

var _ survey.Store = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CreateSurvey inserts the subject and its attributes in one transaction.
// Nothing is visible to readers unless every insert succeeds.
func (s *SQLStore) CreateSurvey(ctx context.Context, subject models.Subject, attrs []models.Attribute) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var surveyID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO personal_details (full_name, email, date_of_birth, contact_numbers, submission_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING survey_id
	`, subject.FullName, subject.Email, subject.DateOfBirth, subject.ContactNumbers, subject.SubmittedAt).Scan(&surveyID)
	if err != nil {
		return 0, fmt.Errorf("insert personal details: %w", err)
	}

	for _, a := range attrs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO options (survey_id, option_value, rating)
			VALUES ($1, $2, $3)
		`, surveyID, a.Name, nullRating(a.Rating))
		if err != nil {
			return 0, fmt.Errorf("insert option %q: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return surveyID, nil
}

// GetSurvey returns survey.ErrNotFound if no subject has the id.
func (s *SQLStore) GetSurvey(ctx context.Context, id int64) (models.SubjectWithAttributes, error) {
	var out models.SubjectWithAttributes

	row := s.db.QueryRowContext(ctx, `
		SELECT survey_id, full_name, email, date_of_birth, contact_numbers, submission_date
		FROM personal_details
		WHERE survey_id = $1
	`, id)
	subject, err := scanSubject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return out, survey.ErrNotFound
	}
	if err != nil {
		return out, fmt.Errorf("query personal details: %w", err)
	}

	attrs, err := s.queryAttributes(ctx, `
		SELECT survey_id, option_value, rating
		FROM options
		WHERE survey_id = $1
		ORDER BY option_value
	`, id)
	if err != nil {
		return out, err
	}

	out.Subject = subject
	out.Attributes = attrs
	return out, nil
}

// ListSurveys returns every subject with its attributes, ordered by id.
func (s *SQLStore) ListSurveys(ctx context.Context) ([]models.SubjectWithAttributes, error) {
	subjects, err := s.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}

	attrs, err := s.queryAttributes(ctx, `
		SELECT survey_id, option_value, rating
		FROM options
		ORDER BY survey_id, option_value
	`)
	if err != nil {
		return nil, err
	}

	out := make([]models.SubjectWithAttributes, len(subjects))
	index := make(map[int64]int, len(subjects))
	for i, subj := range subjects {
		out[i] = models.SubjectWithAttributes{Subject: subj, Attributes: []models.Attribute{}}
		index[subj.ID] = i
	}
	// Options of a subject inserted after the first query are skipped.
	for _, a := range attrs {
		if i, ok := index[a.SurveyID]; ok {
			out[i].Attributes = append(out[i].Attributes, a)
		}
	}

	return out, nil
}

func (s *SQLStore) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT survey_id, full_name, email, date_of_birth, contact_numbers, submission_date
		FROM personal_details
		ORDER BY survey_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query personal details: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		subj, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan personal details: %w", err)
		}
		subjects = append(subjects, subj)
	}

	return subjects, rows.Err()
}

// ListAttributes returns option rows matching the filter. Name is an exact
// match; Prefix is a literal prefix match.
func (s *SQLStore) ListAttributes(ctx context.Context, filter survey.AttributeFilter) ([]models.Attribute, error) {
	switch {
	case filter.Name != "":
		return s.queryAttributes(ctx, `
			SELECT survey_id, option_value, rating
			FROM options
			WHERE option_value = $1
			ORDER BY survey_id
		`, filter.Name)
	case filter.Prefix != "":
		return s.queryAttributes(ctx, `
			SELECT survey_id, option_value, rating
			FROM options
			WHERE option_value LIKE $1 ESCAPE '\'
			ORDER BY survey_id, option_value
		`, escapeLike(filter.Prefix)+"%")
	default:
		return s.queryAttributes(ctx, `
			SELECT survey_id, option_value, rating
			FROM options
			ORDER BY survey_id, option_value
		`)
	}
}

func (s *SQLStore) CountSubjects(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM personal_details`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count personal details: %w", err)
	}
	return count, nil
}

// DeleteSurvey removes the subject; its options go with it via ON DELETE CASCADE.
func (s *SQLStore) DeleteSurvey(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM personal_details WHERE survey_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete personal details: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return survey.ErrNotFound
	}

	return nil
}

func (s *SQLStore) queryAttributes(ctx context.Context, query string, args ...any) ([]models.Attribute, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	attrs := []models.Attribute{}
	for rows.Next() {
		var a models.Attribute
		var rating sql.NullInt64
		if err := rows.Scan(&a.SurveyID, &a.Name, &rating); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		if rating.Valid {
			v := int(rating.Int64)
			a.Rating = &v
		}
		attrs = append(attrs, a)
	}

	return attrs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubject(row rowScanner) (models.Subject, error) {
	var subj models.Subject
	err := row.Scan(
		&subj.ID, &subj.FullName, &subj.Email,
		&subj.DateOfBirth, &subj.ContactNumbers, &subj.SubmittedAt,
	)
	return subj, err
}

func nullRating(r *int) sql.NullInt64 {
	if r == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*r), Valid: true}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

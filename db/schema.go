// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	schema := sqliteSchema
	if dialect == Postgres {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Personal details (one row per survey)
CREATE TABLE IF NOT EXISTS personal_details (
    survey_id BIGSERIAL PRIMARY KEY,
    full_name VARCHAR(100) NOT NULL,
    email VARCHAR(100) NOT NULL,
    date_of_birth DATE NOT NULL,
    contact_numbers VARCHAR(20) NOT NULL,
    submission_date TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Options (foods and statement ratings)
CREATE TABLE IF NOT EXISTS options (
    survey_id BIGINT NOT NULL REFERENCES personal_details(survey_id) ON DELETE CASCADE,
    option_value VARCHAR(100) NOT NULL,
    rating INTEGER,
    PRIMARY KEY (survey_id, option_value)
);

CREATE INDEX IF NOT EXISTS idx_options_option_value ON options(option_value);
`

// AUTOINCREMENT keeps ids from being reused after a delete.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS personal_details (
    survey_id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name VARCHAR(100) NOT NULL,
    email VARCHAR(100) NOT NULL,
    date_of_birth DATE NOT NULL,
    contact_numbers VARCHAR(20) NOT NULL,
    submission_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS options (
    survey_id INTEGER NOT NULL REFERENCES personal_details(survey_id) ON DELETE CASCADE,
    option_value VARCHAR(100) NOT NULL,
    rating INTEGER,
    PRIMARY KEY (survey_id, option_value)
);

CREATE INDEX IF NOT EXISTS idx_options_option_value ON options(option_value);
`

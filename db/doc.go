// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema, and stores surveys.

# Connecting

Open picks the driver from the dialect (modernc.org/sqlite or lib/pq) and
pings with exponential backoff until the database answers:

	conn, err := db.Open(ctx, db.SQLite, "file:survey.db", 30*time.Second)

SQLite DSNs get foreign_keys and busy_timeout pragmas appended, and the pool
is limited to one connection.

# Schema Creation

CreateSchema initializes all required tables for the dialect:

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - personal_details: one row per survey (name, email, date of birth,
    contact numbers, submission date)
  - options: (survey_id, option_value) -> optional rating

# Relationships

	personal_details 1──* options

options.survey_id uses ON DELETE CASCADE.

# Store

SQLStore implements survey.Store. CreateSurvey writes the subject and all
of its options inside one transaction and rolls back on any failure.
*/
package db

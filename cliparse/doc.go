// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5080)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:survey.db)
  - CORSOrigin: allowed origin (default: echo the request Origin)
  - DBWait: how long to retry the first ping (default: 30s)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--cors-origin Allowed CORS origin
	--db-wait     Initial ping retry window

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGIN   → --cors-origin
	DB_WAIT       → --db-wait

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if PORT or DB_WAIT cannot be parsed, or if a
non-sqlite database type is chosen without a database URL.
*/
package cliparse

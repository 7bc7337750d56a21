// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey API server.

The server accepts lifestyle survey submissions (personal details, favourite
foods and four 1-5 agreement ratings), stores them as one personal_details
row plus key/value options rows, and serves read-back, statistics and an
XLSX export.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5080 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first, if present.

# Configuration

  - PORT (-p): server port (default: 5080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN; required for postgres, defaults to file:survey.db
  - CORS_ORIGIN (-cors-origin): allowed origin (default: echo the request)
  - DB_WAIT (-db-wait): how long to retry the first ping (default: 30s)

# Architecture

  - survey: mapping, validation, aggregation, service
  - db: driver setup, schema, SQL store
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - export: XLSX rendering
  - models: request/response and row types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the campus-events API server.

campus-events backs a campus party site: a directory of published events
and live audience voting sessions whose counters only ever go up. A single
admin password unlocks event and session management.

# Starting the Server

With no flags the server uses a local SQLite file:

	ADMIN_PASSWORD=hunter2 go run .

PostgreSQL instead:

	go run . -t postgres -d "postgres://..." -admin-password hunter2

Values may also come from a .env file (see -env-file).

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Password accepted by POST /api/admin/login

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - ADMIN_TOKEN (-admin-token): Fixed bearer token; derived from the password when empty
  - SEED_DEMO (-seed): Insert a demo event and voting session into an empty store

# Architecture

  - handlers: HTTP request handlers (events, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, admin gate, JSON helpers
  - store: SQL access for events and voting sessions
  - metrics: Prometheus collectors
  - models: Request/response and domain types
  - auth: Admin password and token checks
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

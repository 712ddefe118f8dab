// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: SQLite file path (default: campus-events.db) or PostgreSQL connection string
  - AdminPassword: Shared admin password (required)
  - AdminToken: Static bearer token handed out at login (derived from the password if empty)
  - SeedDemo: Load the demo voting session when the store is created
  - EnvFile: dotenv file read before the environment fallbacks (default: .env)

# CLI Flags

	-p                Server port
	-t                Database type
	-d                Database URL
	--admin-password  Admin password
	--admin-token     Admin bearer token
	--seed            Seed demo data
	--env-file        dotenv file

# Environment Variables

Flags fall back to environment variables, which may come from the dotenv file:

	PORT           → -p
	DATABASE_TYPE  → -t
	DATABASE_URL   → -d
	ADMIN_PASSWORD → --admin-password
	ADMIN_TOKEN    → --admin-token
	SEED_DEMO      → --seed

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.

# Validation

ParseFlags returns an error if:

  - ADMIN_PASSWORD is missing
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres
*/
package cliparse

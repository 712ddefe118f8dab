// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/danielhkuo/campus-events/cliparse"
)

//go:embed schema/*.sql
var schemaFiles embed.FS

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema, err := Schema(dbType)
	if err != nil {
		return err
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Schema returns the schema definition for the given database type
func Schema(dbType string) (string, error) {
	var name string
	switch dbType {
	case cliparse.DatabaseSQLite:
		name = "schema/sqlite.sql"
	case cliparse.DatabasePostgres:
		name = "schema/postgres.sql"
	default:
		return "", fmt.Errorf("no schema for database type %q", dbType)
	}

	b, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(b), nil
}

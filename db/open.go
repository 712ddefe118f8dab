// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/campus-events/cliparse"
)

// Writers wait up to this long for the SQLite write lock
const sqliteBusyTimeoutMs = 5000

// Open connects to the configured store and reports whether the schema
// should be bootstrapped. For SQLite that is only when the database file
// did not exist yet; Postgres always gets the IF NOT EXISTS schema.
func Open(cfg cliparse.Config) (*sql.DB, bool, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		path := strings.TrimPrefix(cfg.DatabaseURL, "file:")
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		_, statErr := os.Stat(path)
		fresh := errors.Is(statErr, fs.ErrNotExist)

		conn, err := sql.Open("sqlite", SQLiteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, false, fmt.Errorf("failed to open sqlite: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, false, fmt.Errorf("sqlite ping failed: %w", err)
		}
		return conn, fresh, nil

	case cliparse.DatabasePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, false, fmt.Errorf("failed to open postgres: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, false, fmt.Errorf("postgres ping failed: %w", err)
		}
		return conn, true, nil
	}

	return nil, false, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}

// SQLiteDSN turns a file path into a modernc.org/sqlite DSN. Write
// transactions take the lock at BEGIN (_txlock=immediate) so concurrent
// vote submissions queue on the busy timeout instead of failing with
// SQLITE_BUSY on lock upgrade.
func SQLiteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + fmt.Sprintf("_pragma=busy_timeout(%d)", sqliteBusyTimeoutMs) +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_time_format=sqlite" +
		"&_txlock=immediate"
}

// Bootstrap applies the schema when Open reported a fresh store
func Bootstrap(conn *sql.DB, dbType string, fresh bool) error {
	if !fresh {
		return nil
	}
	return CreateSchema(conn, dbType)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/campus-events/cliparse"
	"github.com/danielhkuo/campus-events/db"
)

const (
	TestAdminPassword = "test-admin-password"
	TestAdminToken    = "test-admin-token"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir() and is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "test.db")

	conn, fresh, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if !fresh {
		t.Fatalf("Expected a fresh test database at %s", cfg.DatabaseURL)
	}

	if err := db.Bootstrap(conn, cfg.DatabaseType, fresh); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  cliparse.DatabaseSQLite,
		AdminPassword: TestAdminPassword,
		AdminToken:    TestAdminToken,
	}
}

// AdminHeaders returns the Authorization header the admin routes expect
func AdminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + TestAdminToken}
}

// CreateTestSession inserts a voting session with options in order and
// returns the session ID and option IDs
func CreateTestSession(t *testing.T, db *sql.DB, question string, active bool, options ...string) (int64, []int64) {
	t.Helper()

	var sessionID int64
	err := db.QueryRow(`
		INSERT INTO voting_sessions (question, is_active)
		VALUES ($1, $2)
		RETURNING id
	`, question, active).Scan(&sessionID)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	optionIDs := make([]int64, 0, len(options))
	for i, text := range options {
		var optionID int64
		err := db.QueryRow(`
			INSERT INTO voting_options (session_id, option_text, option_order)
			VALUES ($1, $2, $3)
			RETURNING id
		`, sessionID, text, i+1).Scan(&optionID)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optionID)
	}

	return sessionID, optionIDs
}

// GetVoteCount reads an option's vote counter straight from the table
func GetVoteCount(t *testing.T, db *sql.DB, optionID int64) int64 {
	t.Helper()

	var count int64
	if err := db.QueryRow(`SELECT vote_count FROM voting_options WHERE id = $1`, optionID).Scan(&count); err != nil {
		t.Fatalf("Failed to read vote count: %v", err)
	}
	return count
}

// SetVoteCount overwrites an option's vote counter
func SetVoteCount(t *testing.T, db *sql.DB, optionID, count int64) {
	t.Helper()

	if _, err := db.Exec(`UPDATE voting_options SET vote_count = $1 WHERE id = $2`, count, optionID); err != nil {
		t.Fatalf("Failed to set vote count: %v", err)
	}
}

// CreateTestEvent inserts an event and returns its ID
// status should be "draft" or "published"
func CreateTestEvent(t *testing.T, db *sql.DB, title string, at time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO events (title, description, event_datetime, location, event_type, track, status)
		VALUES ($1, 'A test event', $2, 'Test Hall', 'party', 'official', $3)
		RETURNING id
	`, title, at.UTC().Truncate(time.Second), status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the {"error": ...} body of a failed request
func AssertError(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	AssertJSON(t, w, &body)
	if body.Error != expected {
		t.Errorf("Expected error %q, got %q", expected, body.Error)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/campus-events/models"
)

const eventColumns = `id, title, description, event_datetime, location, event_type, track, status, created_at`

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// ListPublished returns published events, newest first
func (s *EventStore) ListPublished(ctx context.Context) ([]models.Event, error) {
	return s.list(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE status = $1
		ORDER BY event_datetime DESC, id DESC
	`, models.StatusPublished)
}

// ListUpcoming returns published events at or after now, soonest first
func (s *EventStore) ListUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	return s.list(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE status = $1 AND event_datetime >= $2
		ORDER BY event_datetime ASC, id ASC
	`, models.StatusPublished, now.UTC().Truncate(time.Second))
}

// ListAll returns every event regardless of status, newest first
func (s *EventStore) ListAll(ctx context.Context) ([]models.Event, error) {
	return s.list(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY event_datetime DESC, id DESC
	`)
}

func (s *EventStore) Get(ctx context.Context, id int64) (models.Event, error) {
	e, err := scanEvent(s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to query event %d: %w", id, err)
	}
	return e, nil
}

func (s *EventStore) Create(ctx context.Context, in models.EventInput) (int64, error) {
	if !models.ValidStatus(in.Status) {
		return 0, ErrInvalidInput
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO events (title, description, event_datetime, location, event_type, track, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, in.Title, in.Description, in.EventDatetime.UTC(), in.Location, in.EventType, in.Track, in.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of an event
func (s *EventStore) Update(ctx context.Context, id int64, in models.EventInput) error {
	if !models.ValidStatus(in.Status) {
		return ErrInvalidInput
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE events
		SET title = $1, description = $2, event_datetime = $3, location = $4,
		    event_type = $5, track = $6, status = $7
		WHERE id = $8
	`, in.Title, in.Description, in.EventDatetime.UTC(), in.Location, in.EventType, in.Track, in.Status, id)
	if err != nil {
		return fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return requireRow(result)
}

func (s *EventStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return requireRow(result)
}

func (s *EventStore) list(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDatetime, &e.Location,
		&e.EventType, &e.Track, &e.Status, &e.CreatedAt,
	)
	e.EventDatetime = e.EventDatetime.UTC()
	return e, err
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

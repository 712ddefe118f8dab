// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/campus-events/models"
)

type VotingStore struct {
	db *sql.DB
}

func NewVotingStore(db *sql.DB) *VotingStore {
	return &VotingStore{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// GetSession returns a session, its options in display order and the
// total number of votes across them
func (s *VotingStore) GetSession(ctx context.Context, id int64) (models.SessionResults, error) {
	var res models.SessionResults

	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, is_active, created_at
		FROM voting_sessions
		WHERE id = $1
	`, id).Scan(&res.Session.ID, &res.Session.Question, &res.Session.IsActive, &res.Session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionResults{}, ErrNotFound
	}
	if err != nil {
		return models.SessionResults{}, fmt.Errorf("failed to query session %d: %w", id, err)
	}

	res.Options, err = listOptions(ctx, s.db, id, true)
	if err != nil {
		return models.SessionResults{}, err
	}

	for _, opt := range res.Options {
		res.TotalVotes += opt.VoteCount
	}

	return res, nil
}

// SubmitVote adds exactly one vote to optionID if sessionID names an
// active session, and returns every option of that session afterwards.
//
// The option is not checked against the session. An option id that
// matches no row changes nothing and the call still succeeds.
func (s *VotingStore) SubmitVote(ctx context.Context, sessionID, optionID int64) ([]models.VotingOption, error) {
	if sessionID == 0 || optionID == 0 {
		return nil, ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var active bool
	err = tx.QueryRowContext(ctx, `
		SELECT is_active FROM voting_sessions WHERE id = $1
	`, sessionID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !active) {
		return nil, ErrVotingClosed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session %d: %w", sessionID, err)
	}

	// Single statement so concurrent votes never read the same old count
	_, err = tx.ExecContext(ctx, `
		UPDATE voting_options SET vote_count = vote_count + 1 WHERE id = $1
	`, optionID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment option %d: %w", optionID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}

	return listOptions(ctx, s.db, sessionID, false)
}

// CreateSession inserts a session and its options (display order 1..n)
// in one transaction
func (s *VotingStore) CreateSession(ctx context.Context, question string, options []string, active bool) (int64, error) {
	question = strings.TrimSpace(question)
	if question == "" || len(options) < 2 {
		return 0, ErrInvalidInput
	}
	for _, text := range options {
		if strings.TrimSpace(text) == "" {
			return 0, ErrInvalidInput
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO voting_sessions (question, is_active)
		VALUES ($1, $2)
		RETURNING id
	`, question, active).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}

	for i, text := range options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO voting_options (session_id, option_text, option_order, vote_count)
			VALUES ($1, $2, $3, 0)
		`, id, strings.TrimSpace(text), i+1)
		if err != nil {
			return 0, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit session: %w", err)
	}

	return id, nil
}

// SetSessionActive opens or closes a session for voting
func (s *VotingStore) SetSessionActive(ctx context.Context, id int64, active bool) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE voting_sessions SET is_active = $1 WHERE id = $2
	`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update session %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountSessions returns the number of voting sessions in the store
func (s *VotingStore) CountSessions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM voting_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

func listOptions(ctx context.Context, q queryer, sessionID int64, ordered bool) ([]models.VotingOption, error) {
	query := `
		SELECT id, session_id, option_text, option_order, vote_count
		FROM voting_options
		WHERE session_id = $1`
	if ordered {
		query += `
		ORDER BY option_order, id`
	}

	rows, err := q.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.VotingOption{}
	for rows.Next() {
		var opt models.VotingOption
		if err := rows.Scan(&opt.ID, &opt.SessionID, &opt.OptionText, &opt.OptionOrder, &opt.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate options: %w", err)
	}

	return options, nil
}

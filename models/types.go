package models

import (
	"errors"
	"strings"
	"time"
)

// Event status constants
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Event field defaults
const (
	DefaultEventType = "party"
	DefaultTrack     = "official"
)

// Layouts accepted for event_datetime, most specific first
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var ErrInvalidEventTime = errors.New("invalid event_datetime")

// Request types

// Pointer fields distinguish "absent" from zero; an absent or zero id
// counts as missing.
type SubmitVoteRequest struct {
	SessionID *int64 `json:"session_id"`
	OptionID  *int64 `json:"option_id"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type EventRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	EventDatetime string `json:"event_datetime"`
	Location      string `json:"location"`
	EventType     string `json:"event_type"`
	Track         string `json:"track"`
	Status        string `json:"status"`
}

type CreateSessionRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	IsActive bool     `json:"is_active"`
}

// Response types

type SubmitVoteResponse struct {
	Success bool           `json:"success"`
	Options []VotingOption `json:"options"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type CreatedResponse struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// Domain types

type VotingSession struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type VotingOption struct {
	ID          int64  `json:"id"`
	SessionID   int64  `json:"session_id"`
	OptionText  string `json:"option_text"`
	OptionOrder int    `json:"option_order"`
	VoteCount   int64  `json:"vote_count"`
}

type SessionResults struct {
	Session    VotingSession  `json:"session"`
	Options    []VotingOption `json:"options"`
	TotalVotes int64          `json:"total_votes"`
}

type Event struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EventDatetime time.Time `json:"event_datetime"`
	Location      string    `json:"location"`
	EventType     string    `json:"event_type"`
	Track         string    `json:"track"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	StartsIn      string    `json:"starts_in,omitempty"`
}

// EventInput is a validated EventRequest with defaults applied
type EventInput struct {
	Title         string
	Description   string
	EventDatetime time.Time
	Location      string
	EventType     string
	Track         string
	Status        string
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}

// ParseEventTime parses event_datetime in any accepted layout and
// normalizes it to UTC with second precision
func ParseEventTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, ErrInvalidEventTime
}

// Input reports whether the required fields are present and fills in
// defaults for the rest
func (r EventRequest) Input() (EventInput, bool, error) {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.EventDatetime) == "" {
		return EventInput{}, false, nil
	}

	at, err := ParseEventTime(r.EventDatetime)
	if err != nil {
		return EventInput{}, true, err
	}

	in := EventInput{
		Title:         r.Title,
		Description:   r.Description,
		EventDatetime: at,
		Location:      r.Location,
		EventType:     r.EventType,
		Track:         r.Track,
		Status:        r.Status,
	}
	if in.EventType == "" {
		in.EventType = DefaultEventType
	}
	if in.Track == "" {
		in.Track = DefaultTrack
	}
	if in.Status == "" {
		in.Status = StatusPublished
	}
	return in, true, nil
}

// ValidStatus reports whether s is a known event status
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: session_id, option_id
  - LoginRequest: password
  - EventRequest: title, description, event_datetime, location, event_type, track, status
  - CreateSessionRequest: question, options, is_active

# Response Types

Types for JSON responses:

  - SubmitVoteResponse: success, options
  - LoginResponse: success, token
  - CreatedResponse: id, success
  - SuccessResponse: success
  - ErrorResponse: error

# Domain Types

  - VotingSession: question and active flag
  - VotingOption: option text, display order, vote count
  - SessionResults: a session, its ordered options and total votes
  - Event: event listing record
  - EventInput: validated event fields with defaults applied

# Event Times

ParseEventTime accepts RFC 3339 as well as the datetime-local form
("2006-01-02T15:04") sent by browsers, and normalizes to UTC:

	at, err := models.ParseEventTime("2026-10-31T20:00")

# Constants

Event status values:

	StatusDraft     = "draft"
	StatusPublished = "published"

Event defaults:

	DefaultEventType = "party"
	DefaultTrack     = "official"
*/
package models

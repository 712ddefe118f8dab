// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the campus-events API.

# Handler Types

Each handler is a struct built from a *sql.DB and Config:

  - EventHandler: Public event directory
  - VotingHandler: Session reads and vote submission
  - AdminHandler: Login, event CRUD, session management

	votingHandler := handlers.NewVotingHandler(db, cfg, m)

# Voting

	GET  /api/voting/{id} → GetSession
	POST /api/votes       → SubmitVote

A vote is {"session_id": n, "option_id": n}. Each call adds exactly one to
the option's counter; there is no voter identity. Votes for a closed or
unknown session get 403 "Voting is closed".

# Events

	GET /api/events          → ListEvents
	GET /api/events/upcoming → ListUpcoming (adds starts_in)
	GET /api/events/{id}     → GetEvent

# Admin

	POST /api/admin/login → Login (returns the bearer token)

Everything else under /api/admin is wrapped in middleware.WithAdmin and
expects Authorization: Bearer <token>.

# Errors

Failures are written as {"error": "..."} with the matching status code.
*/
package handlers

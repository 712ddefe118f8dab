// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the campus-events API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

Each call builds its own metrics registry.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Events (public):

	GET /api/events          - Published events, newest first
	GET /api/events/upcoming - Published future events, soonest first
	GET /api/events/{id}     - One event

Voting (public):

	GET  /api/voting/{id} - Session, ordered options, total_votes
	POST /api/votes       - Add one vote

Admin (requires Authorization: Bearer <token>, except login):

	POST   /api/admin/login              - Exchange password for token
	GET    /api/admin/events             - All events including drafts
	POST   /api/admin/events             - Create event
	PUT    /api/admin/events/{id}        - Replace event
	DELETE /api/admin/events/{id}        - Delete event
	POST   /api/admin/voting             - Create session with options
	POST   /api/admin/voting/{id}/open   - Accept votes
	POST   /api/admin/voting/{id}/close  - Refuse votes

# Middleware

Every API route is wrapped, outermost first, in WithLogging and
WithMetrics; admin routes additionally pass through WithAdmin.
*/
package router

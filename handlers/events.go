// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/campus-events/cliparse"
	"github.com/danielhkuo/campus-events/middleware"
	"github.com/danielhkuo/campus-events/store"
)

type EventHandler struct {
	events *store.EventStore
	cfg    cliparse.Config
	now    func() time.Time
}

func NewEventHandler(db *sql.DB, cfg cliparse.Config) *EventHandler {
	return &EventHandler{events: store.NewEventStore(db), cfg: cfg, now: time.Now}
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListPublished(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// ListUpcoming handles GET /api/events/upcoming
// Each event carries a human readable starts_in, e.g. "3 days from now"
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	events, err := h.events.ListUpcoming(r.Context(), now)
	if err != nil {
		slog.Error("failed to list upcoming events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range events {
		events[i].StartsIn = humanize.RelTime(events[i].EventDatetime, now, "ago", "from now")
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	event, err := h.events.Get(r.Context(), eventID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to get event", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// pathID reads the positive integer {id} path value
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

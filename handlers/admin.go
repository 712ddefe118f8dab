// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-events/auth"
	"github.com/danielhkuo/campus-events/cliparse"
	"github.com/danielhkuo/campus-events/middleware"
	"github.com/danielhkuo/campus-events/models"
	"github.com/danielhkuo/campus-events/store"
)

// AdminHandler serves /api/admin. Every route except Login sits behind
// middleware.WithAdmin, so handlers here assume an authorized caller.
type AdminHandler struct {
	events *store.EventStore
	votes  *store.VotingStore
	cfg    cliparse.Config
	token  string
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		events: store.NewEventStore(db),
		votes:  store.NewVotingStore(db),
		cfg:    cfg,
		token:  auth.AdminToken(cfg.AdminToken, cfg.AdminPassword),
	}
}

// Token is the bearer token admin routes accept
func (h *AdminHandler) Token() string {
	return h.token
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(req.Password, h.cfg.AdminPassword); err != nil {
		slog.Warn("admin login failed", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   h.token,
	})
}

// ListEvents handles GET /api/admin/events
// Returns drafts as well as published events
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// CreateEvent handles POST /api/admin/events
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	in, ok := parseEventInput(w, r)
	if !ok {
		return
	}

	id, err := h.events.Create(r.Context(), in)
	if err != nil {
		slog.Error("failed to insert event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	slog.Info("event created", "event_id", id, "status", in.Status)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		ID:      id,
		Success: true,
	})
}

// UpdateEvent handles PUT /api/admin/events/{id}
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	in, ok := parseEventInput(w, r)
	if !ok {
		return
	}

	err := h.events.Update(r.Context(), eventID, in)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to update event", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update event")
		return
	}

	slog.Info("event updated", "event_id", eventID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteEvent handles DELETE /api/admin/events/{id}
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	err := h.events.Delete(r.Context(), eventID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete event", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	slog.Info("event deleted", "event_id", eventID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// CreateSession handles POST /api/admin/voting
func (h *AdminHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.votes.CreateSession(r.Context(), req.Question, req.Options, req.IsActive)
	if errors.Is(err, store.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question and at least two options are required")
		return
	}
	if err != nil {
		slog.Error("failed to create voting session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("voting session created", "session_id", id, "options", len(req.Options), "is_active", req.IsActive)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{
		ID:      id,
		Success: true,
	})
}

// OpenSession handles POST /api/admin/voting/{id}/open
func (h *AdminHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	h.setSessionActive(w, r, true)
}

// CloseSession handles POST /api/admin/voting/{id}/close
// Counts are kept; only new votes are refused
func (h *AdminHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	h.setSessionActive(w, r, false)
}

func (h *AdminHandler) setSessionActive(w http.ResponseWriter, r *http.Request, active bool) {
	sessionID, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	err := h.votes.SetSessionActive(r.Context(), sessionID, active)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to update voting session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("voting session updated", "session_id", sessionID, "is_active", active)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// parseEventInput decodes and validates an event body, writing the 400
// itself when it returns false
func parseEventInput(w http.ResponseWriter, r *http.Request) (models.EventInput, bool) {
	var req models.EventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.EventInput{}, false
	}

	in, present, err := req.Input()
	if !present {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title and event_datetime are required")
		return models.EventInput{}, false
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid event_datetime")
		return models.EventInput{}, false
	}
	if !models.ValidStatus(in.Status) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "status must be draft or published")
		return models.EventInput{}, false
	}

	return in, true
}

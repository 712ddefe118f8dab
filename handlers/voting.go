// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/campus-events/cliparse"
	"github.com/danielhkuo/campus-events/metrics"
	"github.com/danielhkuo/campus-events/middleware"
	"github.com/danielhkuo/campus-events/models"
	"github.com/danielhkuo/campus-events/store"
)

type VotingHandler struct {
	votes   *store.VotingStore
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *VotingHandler {
	return &VotingHandler{votes: store.NewVotingStore(db), cfg: cfg, metrics: m}
}

// GetSession handles GET /api/voting/{id}
func (h *VotingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	res, err := h.votes.GetSession(r.Context(), sessionID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to load voting session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, res)
}

// SubmitVote handles POST /api/votes
// Adds one vote per call; there is no voter identity or deduplication
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.countVote(metrics.VoteRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SessionID == nil || *req.SessionID == 0 || req.OptionID == nil || *req.OptionID == 0 {
		h.countVote(metrics.VoteRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing parameters")
		return
	}
	sessionID, optionID := *req.SessionID, *req.OptionID

	options, err := h.votes.SubmitVote(r.Context(), sessionID, optionID)
	switch {
	case errors.Is(err, store.ErrVotingClosed):
		h.countVote(metrics.VoteClosed)
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is closed")
		return
	case errors.Is(err, store.ErrInvalidInput):
		h.countVote(metrics.VoteRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing parameters")
		return
	case err != nil:
		h.countVote(metrics.VoteError)
		slog.Error("failed to submit vote", "error", err, "session_id", sessionID, "option_id", optionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.countVote(metrics.VoteAccepted)
	slog.Info("vote recorded", "session_id", sessionID, "option_id", optionID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Success: true,
		Options: options,
	})
}

func (h *VotingHandler) countVote(result string) {
	if h.metrics != nil {
		h.metrics.VotesSubmitted.WithLabelValues(result).Inc()
	}
}

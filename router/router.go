// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/campus-events/cliparse"
	"github.com/danielhkuo/campus-events/handlers"
	"github.com/danielhkuo/campus-events/metrics"
	"github.com/danielhkuo/campus-events/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	m := metrics.New()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg, m)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	route := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, h))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return route(middleware.WithAdmin(adminHandler.Token(), h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Event directory (public)
	mux.HandleFunc("GET /api/events", route(eventHandler.ListEvents))
	mux.HandleFunc("GET /api/events/upcoming", route(eventHandler.ListUpcoming))
	mux.HandleFunc("GET /api/events/{id}", route(eventHandler.GetEvent))

	// Voting (public)
	mux.HandleFunc("GET /api/voting/{id}", route(votingHandler.GetSession))
	mux.HandleFunc("POST /api/votes", route(votingHandler.SubmitVote))

	// Admin
	mux.HandleFunc("POST /api/admin/login", route(adminHandler.Login))
	mux.HandleFunc("GET /api/admin/events", admin(adminHandler.ListEvents))
	mux.HandleFunc("POST /api/admin/events", admin(adminHandler.CreateEvent))
	mux.HandleFunc("PUT /api/admin/events/{id}", admin(adminHandler.UpdateEvent))
	mux.HandleFunc("DELETE /api/admin/events/{id}", admin(adminHandler.DeleteEvent))
	mux.HandleFunc("POST /api/admin/voting", admin(adminHandler.CreateSession))
	mux.HandleFunc("POST /api/admin/voting/{id}/open", admin(adminHandler.OpenSession))
	mux.HandleFunc("POST /api/admin/voting/{id}/close", admin(adminHandler.CloseSession))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campus-events API v1"))
	})

	return mux
}

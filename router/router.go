// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/session"
)

func NewRouter(sess *session.Session, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sess, cfg)
	pageHandler := handlers.NewPageHandler(sess, cfg)

	withKey := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSessionKey(sess.ID(), cfg.SessionKeySalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// JSON API
	mux.HandleFunc("GET /session", withKey(sessionHandler.GetSession))
	mux.HandleFunc("POST /session/actions", withKey(sessionHandler.PostAction))

	// Browser front-end
	mux.HandleFunc("POST /ui/actions", withKey(pageHandler.PostForm))
	mux.HandleFunc("GET /{$}", withKey(pageHandler.Index))

	return mux
}

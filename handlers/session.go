// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/session"
)

type SessionHandler struct {
	sess *session.Session
	cfg  cliparse.Config
}

func NewSessionHandler(sess *session.Session, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{sess: sess, cfg: cfg}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.NewSessionResponse(h.sess.Snapshot()))
}

// PostAction handles POST /session/actions
// Actions that do not apply to the current screen are accepted and ignored
func (h *SessionHandler) PostAction(w http.ResponseWriter, r *http.Request) {
	var req models.ActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Action == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "action is required")
		return
	}

	action, err := req.ToAction()
	if errors.Is(err, session.ErrUnknownAction) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown action: "+req.Action)
		return
	}
	if err != nil {
		slog.Error("failed to build action", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to apply action")
		return
	}

	snap, applied := h.sess.Dispatch(action)

	slog.Info("action received",
		"session_id", snap.SessionID,
		"action", req.Action,
		"applied", applied,
		"state", snap.State.String(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.ActionResponse{
		Applied: applied,
		Session: models.NewSessionResponse(snap),
	})
}

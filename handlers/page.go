// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/session"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"args": func(key, action, label string) actionButton {
		return actionButton{Key: key, Action: action, Label: label}
	},
	"plural": func(n int, word string) string {
		return english.Plural(n, word, "")
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
}).ParseFS(templateFS, "templates/page.html"))

type actionButton struct {
	Key    string
	Action string
	Label  string
}

type pageData struct {
	Key     string
	Session models.SessionResponse
}

// PageHandler serves the browser front-end: one HTML page per screen,
// with every button posting a form back to /ui/actions
type PageHandler struct {
	sess *session.Session
	cfg  cliparse.Config
	key  string
}

func NewPageHandler(sess *session.Session, cfg cliparse.Config) *PageHandler {
	return &PageHandler{
		sess: sess,
		cfg:  cfg,
		key:  auth.GenerateSessionKey(sess.ID(), cfg.SessionKeySalt),
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Key:     h.key,
		Session: models.NewSessionResponse(h.sess.Snapshot()),
	}

	// Render to a buffer so a template error doesn't leave a half-written page
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// PostForm handles POST /ui/actions and redirects back to the page
func (h *PageHandler) PostForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	req := models.ActionRequest{
		Action:  r.PostFormValue("action"),
		Confirm: r.PostFormValue("confirm") == "yes",
	}
	if p := r.PostFormValue("position"); p != "" {
		position, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "position must be a number", http.StatusBadRequest)
			return
		}
		req.Position = position
	}

	action, err := req.ToAction()
	if errors.Is(err, session.ErrUnknownAction) {
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("failed to build action", "error", err)
		http.Error(w, "Failed to apply action", http.StatusInternalServerError)
		return
	}

	snap, applied := h.sess.Dispatch(action)
	slog.Info("form action received",
		"session_id", snap.SessionID,
		"action", req.Action,
		"applied", applied,
		"state", snap.State.String(),
	)

	http.Redirect(w, r, "/?key="+url.QueryEscape(h.key), http.StatusSeeOther)
}

// Key returns the session key the page embeds in its form URLs
func (h *PageHandler) Key() string {
	return h.key
}

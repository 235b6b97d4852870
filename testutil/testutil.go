// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-tally/auth"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

// NewTestSession creates a session over the default four-candidate roster
func NewTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(tally.NewDefault())
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		UI:             cliparse.UIWeb,
		Port:           3318,
		Candidates:     append([]string(nil), tally.DefaultRoster...),
		SessionKeySalt: "test-session-salt",
	}
}

// SessionKey returns the key that authorizes requests for the session
func SessionKey(sess *session.Session, cfg cliparse.Config) string {
	return auth.GenerateSessionKey(sess.ID(), cfg.SessionKeySalt)
}

// Dispatch applies actions in order, failing the test if any is ignored
func Dispatch(t *testing.T, sess *session.Session, actions ...session.Action) session.Snapshot {
	t.Helper()

	var snap session.Snapshot
	for _, a := range actions {
		var applied bool
		snap, applied = sess.Dispatch(a)
		if !applied {
			t.Fatalf("action %s was ignored in state %s", a.Kind, snap.State)
		}
	}
	return snap
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

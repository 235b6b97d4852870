// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /session", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(duration_ms) at info level.

# Session Key

Reject requests without the key derived for the session:

	middleware.RequireSessionKey(sess.ID(), cfg.SessionKeySalt, handler)

The key is read from the X-Session-Key header, then the "key" query
parameter so plain browser links and form posts work.

# Local Access

The web front-end only serves this machine:

	server := http.Server{
		Handler: middleware.LoopbackOnly(middleware.CORS(mux)),
	}

LoopbackOnly checks RemoteAddr and ignores forwarding headers. CORS only
answers origins on localhost or a loopback IP.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.ActionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the client IP for logging (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware

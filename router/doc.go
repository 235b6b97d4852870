// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the web front-end.

# Route Registration

NewRouter creates a configured http.ServeMux bound to one session:

	mux := router.NewRouter(sess, cfg)

# Endpoints

Health:

	GET /health

Browser front-end (requires ?key=):

	GET  /           - Current screen as HTML
	POST /ui/actions - Form post of one action, redirects to /

JSON API (requires X-Session-Key or ?key=):

	GET  /session         - Current snapshot
	POST /session/actions - Apply one action

The session key is derived with auth.GenerateSessionKey from the session ID
and cfg.SessionKeySalt. main prints the full URL, key included, at startup.
*/
package router

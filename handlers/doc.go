// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the web front-end.

# Handler Types

Each handler is a struct holding the session and config:

  - SessionHandler: JSON snapshot and action endpoints
  - PageHandler: server-rendered HTML page and form posts

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(sess, cfg)
	pageHandler := handlers.NewPageHandler(sess, cfg)

# JSON API

	GET  /session         → GetSession
	POST /session/actions → PostAction

	{"action": "vote", "position": 2}
	{"action": "confirm_exit", "confirm": true}

Unknown action names are rejected with 400. Known actions that do not
apply to the current screen return 200 with "applied": false and the
unchanged session.

# Browser Page

	GET  /           → Index
	POST /ui/actions → PostForm (303 back to /)

Every candidate gets its own form carrying a hidden position field, so a
click sends the ballot position itself. The page template is embedded from
templates/page.html.
*/
package handlers

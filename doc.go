// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for Quickly Tally.

Quickly Tally runs a single voting session on one machine: a fixed slate of
candidates, one vote slot per candidate, a running tally and a final
results screen. Nothing is stored once the process exits.

# Starting

Terminal front-end (default):

	go run .

Browser front-end on localhost:

	go run . -ui web -p 3318

The web front-end prints a URL carrying the session key; open it in a
browser. The process exits once the user confirms exit, or on Ctrl-C.

# Configuration

  - UI (-ui): console or web (default: console)
  - PORT (-p): web port (default: 3318)
  - CANDIDATES (-c): comma-separated names (default: John,Jane,Bob,Alice)
  - SESSION_KEY_SALT (-key-salt): web session key secret (default: random)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

A .env file in the working directory is loaded if present.

# Architecture

  - tally: vote counters and the remaining-vote countdown
  - session: screen state machine driven by user actions
  - console: terminal renderer and input loop
  - handlers, router, middleware, models: web front-end
  - auth: session key derivation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - UI: front-end, "console" (default) or "web"
  - Port: web front-end port (default: 3318)
  - Candidates: ballot names in order (default: John, Jane, Bob, Alice)
  - SessionKeySalt: secret for the web session key (random per run if unset)
  - LogLevel: slog level (default: info)
  - EnvFile: dotenv file to load (default: .env, skipped if missing)

# CLI Flags

	-ui         Front-end (console or web)
	-p          Web port
	-c          Comma-separated candidate names
	-key-salt   Session key salt
	-log-level  debug, info, warn or error
	-env-file   Path to a dotenv file

# Environment Variables

Flags fall back to environment variables:

	UI               → -ui
	PORT             → -p
	CANDIDATES       → -c
	SESSION_KEY_SALT → -key-salt
	LOG_LEVEL        → -log-level

Variables in the env file are loaded with godotenv and never override
variables already set in the process environment. CLI flags take
precedence over both.

# Validation

ParseFlags returns an error for an unknown UI, a port outside 1-65535,
a candidate list with no names, an unknown log level, or an unreadable
env file.
*/
package cliparse

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives the key that authorizes the web front-end.

# Session Keys

Session keys use HMAC-SHA256 over the session ID:

	key := auth.GenerateSessionKey(sessionID, salt)
	err := auth.ValidateSessionKey(sessionID, key, salt)

The key is URL-safe base64 encoded without padding, so it can travel in the
"key" query parameter of the URL printed at startup. Since it's
deterministic, nothing needs to be stored to validate it.

# Salts

When SESSION_KEY_SALT is not configured a random one is generated per run:

	salt, err := auth.GenerateSalt(32) // 64 hex characters
*/
package auth

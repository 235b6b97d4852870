// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateSalt(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"32 bytes", 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, err := GenerateSalt(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateSalt() error = %v", err)
			}
			if len(salt) != tt.wantLen {
				t.Errorf("GenerateSalt() length = %d, want %d", len(salt), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range salt {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateSalt() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two salts should be different
	s1, _ := GenerateSalt(16)
	s2, _ := GenerateSalt(16)
	if s1 == s2 {
		t.Error("GenerateSalt() produced duplicate salts (extremely unlikely)")
	}
}

func TestGenerateSessionKey(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		salt      string
	}{
		{"standard", "3f1c9a4e-6a43-4f7e-9d55-0b7f3c1d2e8a", "secret-salt"},
		{"empty session id", "", "salt"},
		{"empty salt", "session456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateSessionKey(tt.sessionID, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateSessionKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateSessionKey(tt.sessionID, tt.salt)
			if key != key2 {
				t.Error("GenerateSessionKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.sessionID != "" && tt.salt != "" {
				differentKey := GenerateSessionKey(tt.sessionID+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateSessionKey() produced same key for different session IDs")
				}
			}

			// Should be URL-safe
			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateSessionKey() contains non URL-safe characters: %s", key)
			}
		})
	}
}

func TestValidateSessionKey(t *testing.T) {
	sessionID := "session-abc"
	salt := "test-salt"
	validKey := GenerateSessionKey(sessionID, salt)

	tests := []struct {
		name      string
		sessionID string
		key       string
		salt      string
		wantErr   error
	}{
		{"valid key", sessionID, validKey, salt, nil},
		{"wrong key", sessionID, "not-the-key", salt, ErrInvalidSessionKey},
		{"wrong session", "session-xyz", validKey, salt, ErrInvalidSessionKey},
		{"wrong salt", sessionID, validKey, "other-salt", ErrInvalidSessionKey},
		{"empty key", sessionID, "", salt, ErrInvalidSessionKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionKey(tt.sessionID, tt.key, tt.salt)
			if err != tt.wantErr {
				t.Errorf("ValidateSessionKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-tally/tally"
)

const (
	UIConsole = "console"
	UIWeb     = "web"
)

type Config struct {
	UI             string
	Port           int
	Candidates     []string
	SessionKeySalt string
	LogLevel       slog.Level
	EnvFile        string
}

// ParseFlags validates flags and fills the rest from the environment.
// Precedence: flag, process env, env file, default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var candidates, logLevel string

	fs := flag.NewFlagSet("quickly-tally", flag.ContinueOnError)

	fs.StringVar(&cfg.UI, "ui", "", "Front-end: console or web")
	fs.IntVar(&cfg.Port, "p", 0, "Web front-end port")
	fs.StringVar(&candidates, "c", "", "Comma-separated candidate names")
	fs.StringVar(&cfg.SessionKeySalt, "key-salt", "", "Session key salt (prefer env)")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Env file to load, if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv.Load never overrides variables that are already set
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.UI == "" {
		cfg.UI = os.Getenv("UI")
		if cfg.UI == "" {
			cfg.UI = UIConsole
		}
	}
	cfg.UI = strings.ToLower(cfg.UI)
	if cfg.UI != UIConsole && cfg.UI != UIWeb {
		return Config{}, fmt.Errorf("invalid UI %q (use console or web)", cfg.UI)
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if candidates == "" {
		candidates = os.Getenv("CANDIDATES")
	}
	if candidates == "" {
		cfg.Candidates = append([]string(nil), tally.DefaultRoster...)
	} else {
		cfg.Candidates = splitNames(candidates)
		if len(cfg.Candidates) == 0 {
			return Config{}, errors.New("candidate list is empty")
		}
	}

	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}

func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-tally/session"
)

const clearScreen = "\033[H\033[2J"

// Console is the terminal front-end: one action per input line
type Console struct {
	in    io.Reader
	out   io.Writer
	clear bool
}

// New creates a console. The screen is cleared between renders only when
// out is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		clear: isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run renders the session and feeds it input until the user exits,
// input ends, or ctx is cancelled. End of input is not an error.
func (c *Console) Run(ctx context.Context, s *session.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	snap := s.Snapshot()
	notice := ""

	for {
		if err := c.draw(snap, notice); err != nil {
			return fmt.Errorf("failed to render screen: %w", err)
		}
		if snap.State == session.StateExited {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				slog.Info("input closed", "session_id", snap.SessionID)
				return nil
			}

			notice = ""
			action, err := ParseAction(snap.State, line)
			if err != nil {
				notice = fmt.Sprintf("Unrecognized input %q", line)
				continue
			}

			var applied bool
			snap, applied = s.Dispatch(action)
			if !applied && action.Kind == session.ActionVote {
				notice = fmt.Sprintf("No candidate at position %d", action.Position)
			}
		}
	}
}

func (c *Console) draw(snap session.Snapshot, notice string) error {
	if c.clear {
		if _, err := io.WriteString(c.out, clearScreen); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(c.out, "\n"); err != nil {
			return err
		}
	}

	if err := Render(c.out, snap); err != nil {
		return err
	}

	if notice != "" {
		if _, err := fmt.Fprintf(c.out, "\n%s\n", notice); err != nil {
			return err
		}
	}

	if snap.State != session.StateExited {
		_, err := io.WriteString(c.out, "> ")
		return err
	}
	return nil
}

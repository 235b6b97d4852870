// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-tally/session"
)

var ErrUnrecognizedInput = errors.New("unrecognized input")

// ParseAction maps one line of user input to an action for the given screen
func ParseAction(state session.State, line string) (session.Action, error) {
	input := strings.ToLower(strings.TrimSpace(line))

	switch state {
	case session.StateMainMenu:
		switch input {
		case "v", "vote again":
			return session.VoteAgain(), nil
		case "g", "go", "go to voting":
			return session.GoToVoting(), nil
		case "q", "quit", "exit":
			return session.RequestExit(), nil
		}

	case session.StateVotingOpen:
		if input == "s" || input == "skip" {
			return session.Skip(), nil
		}
		// Positions are validated by the tally
		if position, err := strconv.Atoi(input); err == nil {
			return session.Vote(position), nil
		}

	case session.StateResultsShown:
		if input == "q" || input == "quit" || input == "exit" {
			return session.RequestExit(), nil
		}
		return session.OpenMainMenu(), nil

	case session.StateConfirmingExit:
		switch input {
		case "y", "yes":
			return session.ConfirmExit(true), nil
		case "n", "no":
			return session.ConfirmExit(false), nil
		}
	}

	return session.Action{}, ErrUnrecognizedInput
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies a user-triggered event
type ActionKind int

const (
	ActionOpenMainMenu ActionKind = iota + 1
	ActionGoToVoting
	ActionVote
	ActionSkip
	ActionVoteAgain
	ActionRequestExit
	ActionConfirmExit
)

var actionNames = map[ActionKind]string{
	ActionOpenMainMenu: "main_menu",
	ActionGoToVoting:   "go_to_voting",
	ActionVote:         "vote",
	ActionSkip:         "skip",
	ActionVoteAgain:    "vote_again",
	ActionRequestExit:  "request_exit",
	ActionConfirmExit:  "confirm_exit",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// ParseActionKind maps a wire name such as "vote" back to its kind
func ParseActionKind(name string) (ActionKind, error) {
	for kind, n := range actionNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Action is a single user event. Position is only read for ActionVote,
// Confirm only for ActionConfirmExit.
type Action struct {
	Kind     ActionKind
	Position int
	Confirm  bool
}

func OpenMainMenu() Action { return Action{Kind: ActionOpenMainMenu} }
func GoToVoting() Action   { return Action{Kind: ActionGoToVoting} }
func Skip() Action         { return Action{Kind: ActionSkip} }
func VoteAgain() Action    { return Action{Kind: ActionVoteAgain} }
func RequestExit() Action  { return Action{Kind: ActionRequestExit} }

// Vote casts a vote for the candidate at position
func Vote(position int) Action {
	return Action{Kind: ActionVote, Position: position}
}

// ConfirmExit answers the exit prompt
func ConfirmExit(yes bool) Action {
	return Action{Kind: ActionConfirmExit, Confirm: yes}
}

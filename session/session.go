// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/tally"
)

// State is the screen the front-end should be showing
type State int

const (
	StateMainMenu State = iota
	StateVotingOpen
	StateResultsShown
	StateConfirmingExit
	StateExited
)

var stateNames = map[State]string{
	StateMainMenu:       "main_menu",
	StateVotingOpen:     "voting_open",
	StateResultsShown:   "results_shown",
	StateConfirmingExit: "confirming_exit",
	StateExited:         "exited",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Snapshot is a read-only view of the session for rendering
type Snapshot struct {
	SessionID   string
	State       State
	Candidates  []tally.Candidate
	Leaders     []tally.Candidate
	Remaining   int
	Allotment   int
	TotalVotes  int
	BallotsUsed int
	VotingOpen  bool
}

// Session drives a Tally through the menu → voting → results cycle.
// Dispatch and Snapshot may be called from multiple goroutines; actions are
// applied one at a time.
type Session struct {
	mu     sync.Mutex
	id     string
	tally  *tally.Tally
	state  State
	resume State // where a declined exit prompt returns to
	done   chan struct{}
}

// New starts a session at the main menu
func New(t *tally.Tally) *Session {
	return &Session{
		id:    uuid.NewString(),
		tally: t,
		state: StateMainMenu,
		done:  make(chan struct{}),
	}
}

// ID returns the session identifier used in logs and API responses
func (s *Session) ID() string {
	return s.id
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed once the user confirms exit
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Dispatch applies a user action and returns the resulting snapshot.
// Actions that do not apply to the current state are ignored; the second
// return value reports whether anything changed.
func (s *Session) Dispatch(a Action) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.state
	applied := s.apply(a)

	if applied {
		slog.Debug("action applied",
			"session_id", s.id,
			"action", a.Kind.String(),
			"position", a.Position,
			"from", from.String(),
			"to", s.state.String(),
			"remaining", s.tally.Remaining(),
		)
	} else {
		slog.Debug("action ignored",
			"session_id", s.id,
			"action", a.Kind.String(),
			"position", a.Position,
			"state", from.String(),
		)
	}

	return s.snapshot(), applied
}

func (s *Session) apply(a Action) bool {
	switch s.state {
	case StateMainMenu:
		switch a.Kind {
		case ActionGoToVoting:
			s.enterVoting()
			return true
		case ActionVoteAgain:
			s.tally.Reset()
			s.enterVoting()
			return true
		case ActionRequestExit:
			s.promptExit()
			return true
		}

	case StateVotingOpen:
		var ok bool
		switch a.Kind {
		case ActionVote:
			ok = s.tally.CastVote(a.Position)
		case ActionSkip:
			ok = s.tally.SkipVote()
		}
		if ok && !s.tally.IsVotingOpen() {
			s.state = StateResultsShown
		}
		return ok

	case StateResultsShown:
		switch a.Kind {
		case ActionOpenMainMenu:
			s.state = StateMainMenu
			return true
		case ActionRequestExit:
			s.promptExit()
			return true
		}

	case StateConfirmingExit:
		if a.Kind != ActionConfirmExit {
			return false
		}
		if !a.Confirm {
			s.state = s.resume
			return true
		}
		s.state = StateExited
		close(s.done)
		slog.Info("session ended", "session_id", s.id, "total_votes", s.tally.TotalVotes())
		return true
	}

	return false
}

func (s *Session) enterVoting() {
	if s.tally.IsVotingOpen() {
		s.state = StateVotingOpen
	} else {
		s.state = StateResultsShown
	}
}

func (s *Session) promptExit() {
	s.resume = s.state
	s.state = StateConfirmingExit
}

// Snapshot returns the current view without changing state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		SessionID:   s.id,
		State:       s.state,
		Candidates:  s.tally.Candidates(),
		Leaders:     s.tally.Leaders(),
		Remaining:   s.tally.Remaining(),
		Allotment:   s.tally.Size(),
		TotalVotes:  s.tally.TotalVotes(),
		BallotsUsed: s.tally.BallotsUsed(),
		VotingOpen:  s.tally.IsVotingOpen(),
	}
}

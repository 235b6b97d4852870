// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRoster = errors.New("roster must contain at least one candidate")
	ErrBlankName   = errors.New("candidate name cannot be blank")
)

// DefaultRoster is the slate used when no candidates are configured
var DefaultRoster = []string{"John", "Jane", "Bob", "Alice"}

// Candidate is a single entry on the ballot
type Candidate struct {
	Position int
	Name     string
	Votes    int
}

// Tally holds the roster, per-candidate counts and the remaining-vote countdown.
// It is not safe for concurrent use.
type Tally struct {
	candidates []Candidate // index = position - 1
	remaining  int
	ballots    int
}

// New creates a tally with positions 1..len(names) assigned in order
func New(names []string) (*Tally, error) {
	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}

	candidates := make([]Candidate, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("position %d: %w", i+1, ErrBlankName)
		}
		candidates[i] = Candidate{Position: i + 1, Name: name}
	}

	return &Tally{
		candidates: candidates,
		remaining:  len(candidates),
	}, nil
}

// NewDefault creates a tally over DefaultRoster
func NewDefault() *Tally {
	t, err := New(DefaultRoster)
	if err != nil {
		panic(err)
	}
	return t
}

// CastVote records one vote for the candidate at position.
// Returns false, with no state change, when voting is closed or the position is unknown.
func (t *Tally) CastVote(position int) bool {
	if t.remaining == 0 || position < 1 || position > len(t.candidates) {
		return false
	}
	t.candidates[position-1].Votes++
	t.remaining--
	t.ballots++
	return true
}

// SkipVote consumes one vote slot without counting it for anyone
func (t *Tally) SkipVote() bool {
	if t.remaining == 0 {
		return false
	}
	t.remaining--
	t.ballots++
	return true
}

// Reset reopens voting. Accumulated counts are kept.
func (t *Tally) Reset() {
	t.remaining = len(t.candidates)
}

// TotalVotes returns the sum of all candidate counts
func (t *Tally) TotalVotes() int {
	total := 0
	for _, c := range t.candidates {
		total += c.Votes
	}
	return total
}

// IsVotingOpen reports whether any vote slots remain
func (t *Tally) IsVotingOpen() bool {
	return t.remaining > 0
}

// Remaining returns the number of vote-or-skip actions left in this cycle
func (t *Tally) Remaining() int {
	return t.remaining
}

// BallotsUsed returns every accepted vote or skip, across resets
func (t *Tally) BallotsUsed() int {
	return t.ballots
}

// Size returns the number of candidates, which is also the vote allotment per cycle
func (t *Tally) Size() int {
	return len(t.candidates)
}

// Candidates returns the roster in ballot order
func (t *Tally) Candidates() []Candidate {
	out := make([]Candidate, len(t.candidates))
	copy(out, t.candidates)
	return out
}

// Candidate looks up a candidate by ballot position
func (t *Tally) Candidate(position int) (Candidate, bool) {
	if position < 1 || position > len(t.candidates) {
		return Candidate{}, false
	}
	return t.candidates[position-1], true
}

// Leaders returns the candidates sharing the highest count, in ballot order.
// Empty when nobody has a vote yet.
func (t *Tally) Leaders() []Candidate {
	best := 0
	for _, c := range t.candidates {
		if c.Votes > best {
			best = c.Votes
		}
	}
	if best == 0 {
		return nil
	}

	var leaders []Candidate
	for _, c := range t.candidates {
		if c.Votes == best {
			leaders = append(leaders, c)
		}
	}
	return leaders
}

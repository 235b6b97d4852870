// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

// Request types

// ActionRequest names one session action, e.g. "vote" or "confirm_exit".
// Position is read for "vote", Confirm for "confirm_exit".
type ActionRequest struct {
	Action   string `json:"action"`
	Position int    `json:"position,omitempty"`
	Confirm  bool   `json:"confirm,omitempty"`
}

// Response types

type CandidateView struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Votes    int    `json:"votes"`
}

type SessionResponse struct {
	SessionID      string          `json:"session_id"`
	State          string          `json:"state"`
	Candidates     []CandidateView `json:"candidates"`
	Leaders        []CandidateView `json:"leaders"`
	RemainingVotes int             `json:"remaining_votes"`
	Allotment      int             `json:"allotment"`
	TotalVotes     int             `json:"total_votes"`
	BallotsUsed    int             `json:"ballots_used"`
	VotingOpen     bool            `json:"voting_open"`
}

type ActionResponse struct {
	Applied bool            `json:"applied"`
	Session SessionResponse `json:"session"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewSessionResponse converts a session snapshot to its JSON shape
func NewSessionResponse(snap session.Snapshot) SessionResponse {
	return SessionResponse{
		SessionID:      snap.SessionID,
		State:          snap.State.String(),
		Candidates:     candidateViews(snap.Candidates),
		Leaders:        candidateViews(snap.Leaders),
		RemainingVotes: snap.Remaining,
		Allotment:      snap.Allotment,
		TotalVotes:     snap.TotalVotes,
		BallotsUsed:    snap.BallotsUsed,
		VotingOpen:     snap.VotingOpen,
	}
}

// ToAction validates the request and builds the session action
func (r ActionRequest) ToAction() (session.Action, error) {
	kind, err := session.ParseActionKind(r.Action)
	if err != nil {
		return session.Action{}, err
	}
	return session.Action{Kind: kind, Position: r.Position, Confirm: r.Confirm}, nil
}

func candidateViews(candidates []tally.Candidate) []CandidateView {
	views := make([]CandidateView, len(candidates))
	for i, c := range candidates {
		views[i] = CandidateView{Position: c.Position, Name: c.Name, Votes: c.Votes}
	}
	return views
}

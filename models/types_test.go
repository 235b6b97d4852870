// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"testing"

	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

func TestNewSessionResponse(t *testing.T) {
	sess := session.New(tally.NewDefault())
	sess.Dispatch(session.GoToVoting())
	snap, _ := sess.Dispatch(session.Vote(3))

	resp := NewSessionResponse(snap)

	if resp.SessionID != sess.ID() {
		t.Errorf("Expected session id %s, got %s", sess.ID(), resp.SessionID)
	}
	if resp.State != "voting_open" {
		t.Errorf("Expected voting_open, got %s", resp.State)
	}
	if len(resp.Candidates) != 4 {
		t.Fatalf("Expected 4 candidates, got %d", len(resp.Candidates))
	}
	if resp.Candidates[2] != (CandidateView{Position: 3, Name: "Bob", Votes: 1}) {
		t.Errorf("Unexpected candidate view %+v", resp.Candidates[2])
	}
	if len(resp.Leaders) != 1 || resp.Leaders[0].Name != "Bob" {
		t.Errorf("Expected Bob to lead, got %+v", resp.Leaders)
	}
	if resp.RemainingVotes != 3 || resp.TotalVotes != 1 || resp.BallotsUsed != 1 || !resp.VotingOpen {
		t.Errorf("Unexpected counters %+v", resp)
	}
}

func TestActionRequestToAction(t *testing.T) {
	tests := []struct {
		name     string
		req      ActionRequest
		expected session.Action
	}{
		{"vote", ActionRequest{Action: "vote", Position: 2}, session.Vote(2)},
		{"skip", ActionRequest{Action: "skip"}, session.Skip()},
		{"confirm yes", ActionRequest{Action: "confirm_exit", Confirm: true}, session.ConfirmExit(true)},
		{"confirm no", ActionRequest{Action: "confirm_exit"}, session.ConfirmExit(false)},
		{"main menu", ActionRequest{Action: "main_menu"}, session.OpenMainMenu()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToAction()
			if err != nil {
				t.Fatalf("ToAction() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ToAction() = %+v, want %+v", got, tt.expected)
			}
		})
	}

	_, err := ActionRequest{Action: "recount"}.ToAction()
	if !errors.Is(err, session.ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func TestGetSession(t *testing.T) {
	sess := testutil.NewTestSession(t)
	handler := NewSessionHandler(sess, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/session", nil, nil)
	w := httptest.NewRecorder()
	handler.GetSession(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SessionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.State != "main_menu" {
		t.Errorf("Expected main_menu, got %s", resp.State)
	}
	if resp.RemainingVotes != 4 || resp.Allotment != 4 {
		t.Errorf("Expected 4/4 votes remaining, got %d/%d", resp.RemainingVotes, resp.Allotment)
	}
	if !resp.VotingOpen {
		t.Error("Expected voting_open to be true")
	}
	if len(resp.Candidates) != 4 || resp.Candidates[3].Name != "Alice" || resp.Candidates[3].Position != 4 {
		t.Errorf("Unexpected candidates: %+v", resp.Candidates)
	}
	if len(resp.Leaders) != 0 {
		t.Errorf("Expected no leaders, got %+v", resp.Leaders)
	}
}

func TestPostAction(t *testing.T) {
	tests := []struct {
		name           string
		setup          []session.Action
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.ActionResponse)
	}{
		{
			name:           "go to voting",
			requestBody:    models.ActionRequest{Action: "go_to_voting"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ActionResponse) {
				if !resp.Applied || resp.Session.State != "voting_open" {
					t.Errorf("Expected applied transition to voting_open, got %+v", resp)
				}
			},
		},
		{
			name:           "vote",
			setup:          []session.Action{session.GoToVoting()},
			requestBody:    models.ActionRequest{Action: "vote", Position: 2},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ActionResponse) {
				if resp.Session.Candidates[1].Votes != 1 {
					t.Errorf("Expected Jane to have 1 vote, got %d", resp.Session.Candidates[1].Votes)
				}
				if resp.Session.RemainingVotes != 3 {
					t.Errorf("Expected 3 remaining, got %d", resp.Session.RemainingVotes)
				}
			},
		},
		{
			name:           "last vote shows results",
			setup:          []session.Action{session.GoToVoting(), session.Vote(1), session.Vote(1), session.Skip()},
			requestBody:    models.ActionRequest{Action: "vote", Position: 3},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ActionResponse) {
				s := resp.Session
				if s.State != "results_shown" || s.VotingOpen {
					t.Errorf("Expected closed results, got %+v", s)
				}
				if s.TotalVotes != 3 || s.BallotsUsed != 4 {
					t.Errorf("Expected 3 votes over 4 ballots, got %d/%d", s.TotalVotes, s.BallotsUsed)
				}
				if len(s.Leaders) != 1 || s.Leaders[0].Name != "John" {
					t.Errorf("Expected John to lead, got %+v", s.Leaders)
				}
			},
		},
		{
			name:           "unknown candidate is ignored",
			setup:          []session.Action{session.GoToVoting()},
			requestBody:    models.ActionRequest{Action: "vote", Position: 12},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ActionResponse) {
				if resp.Applied {
					t.Error("Expected vote for unknown candidate to be ignored")
				}
				if resp.Session.RemainingVotes != 4 {
					t.Errorf("Expected 4 remaining, got %d", resp.Session.RemainingVotes)
				}
			},
		},
		{
			name:           "action invalid for state is ignored",
			requestBody:    models.ActionRequest{Action: "skip"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ActionResponse) {
				if resp.Applied || resp.Session.State != "main_menu" {
					t.Errorf("Expected ignored skip on main menu, got %+v", resp)
				}
			},
		},
		{
			name:           "confirm exit",
			setup:          []session.Action{session.RequestExit()},
			requestBody:    models.ActionRequest{Action: "confirm_exit", Confirm: true},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.ActionResponse) {
				if resp.Session.State != "exited" {
					t.Errorf("Expected exited, got %s", resp.Session.State)
				}
			},
		},
		{
			name:           "missing action",
			requestBody:    models.ActionRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown action",
			requestBody:    models.ActionRequest{Action: "stuff_ballot"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := testutil.NewTestSession(t)
			testutil.Dispatch(t, sess, tt.setup...)
			handler := NewSessionHandler(sess, testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/session/actions", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.PostAction(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil && w.Code == http.StatusOK {
				var resp models.ActionResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestPostAction_InvalidJSON(t *testing.T) {
	sess := testutil.NewTestSession(t)
	handler := NewSessionHandler(sess, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/session/actions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.PostAction(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestPostAction_FullScenario(t *testing.T) {
	sess := testutil.NewTestSession(t)
	handler := NewSessionHandler(sess, testutil.GetTestConfig())

	steps := []models.ActionRequest{
		{Action: "go_to_voting"},
		{Action: "vote", Position: 1},
		{Action: "vote", Position: 1},
		{Action: "skip"},
		{Action: "vote", Position: 3},
		{Action: "main_menu"},
		{Action: "vote_again"},
		{Action: "vote", Position: 2},
	}

	var resp models.ActionResponse
	for i, step := range steps {
		req := testutil.MakeRequest("POST", "/session/actions", step, nil)
		w := httptest.NewRecorder()
		handler.PostAction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Step %d (%s) failed: %d - %s", i+1, step.Action, w.Code, w.Body.String())
		}
		testutil.AssertJSON(t, w, &resp)
		if !resp.Applied {
			t.Fatalf("Step %d (%s) was ignored", i+1, step.Action)
		}
	}

	expected := map[string]int{"John": 2, "Jane": 1, "Bob": 1, "Alice": 0}
	for _, c := range resp.Session.Candidates {
		if c.Votes != expected[c.Name] {
			t.Errorf("Expected %s to have %d votes, got %d", c.Name, expected[c.Name], c.Votes)
		}
	}
	if resp.Session.RemainingVotes != 3 {
		t.Errorf("Expected 3 remaining, got %d", resp.Session.RemainingVotes)
	}
	if resp.Session.TotalVotes != 4 || resp.Session.BallotsUsed != 5 {
		t.Errorf("Expected 4 votes over 5 ballots, got %d/%d", resp.Session.TotalVotes, resp.Session.BallotsUsed)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types of the web front-end.

# Request Types

  - ActionRequest: action, position (vote), confirm (confirm_exit)

Valid action names:

	main_menu, go_to_voting, vote, skip, vote_again, request_exit, confirm_exit

# Response Types

  - SessionResponse: session_id, state, candidates, leaders,
    remaining_votes, allotment, total_votes, ballots_used, voting_open
  - ActionResponse: applied, session
  - ErrorResponse: error, message

# Conversions

	resp := models.NewSessionResponse(sess.Snapshot())
	action, err := req.ToAction()
*/
package models

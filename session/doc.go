// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session is the screen state machine that front-ends drive.

# States

	main_menu → voting_open → results_shown → main_menu

  - go_to_voting opens the voting prompt, or jumps straight to results
    when no vote slots remain
  - vote and skip keep the prompt open until the last slot is used, then
    move to results automatically
  - vote_again resets the tally's slots and opens the prompt
  - main_menu leaves the results screen
  - request_exit asks for confirmation; confirm_exit(no) returns to the
    previous screen, confirm_exit(yes) ends the session

Actions that make no sense for the current state are ignored rather than
reported as errors.

# Usage

	s := session.New(tally.NewDefault())
	snap, applied := s.Dispatch(session.GoToVoting())
	snap, applied = s.Dispatch(session.Vote(2))

	<-s.Done() // closed after confirm_exit(yes)

A Session owns its Tally. Dispatch is serialized with a mutex so an HTTP
front-end can share one session across request goroutines.
*/
package session

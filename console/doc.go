// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console is the terminal front-end for a voting session.

# Running

	c := console.New(os.Stdin, os.Stdout)
	err := c.Run(ctx, sess)

Run redraws the current screen, reads one line, turns it into a session
action and repeats until the user confirms exit or input ends.

# Input

Main menu:

	v   Vote Again (reopens all vote slots)
	g   Go to Voting
	q   Exit

Voting prompt:

	1-N  vote for the candidate at that ballot position
	s    Skip

Results: Enter returns to the main menu, q exits.

Exit prompt: y or n.

# Rendering

Render writes a single screen and can be used on its own:

	console.Render(&buf, sess.Snapshot())

Counts are formatted with go-humanize. The screen is cleared between
renders only when output is a terminal.
*/
package console

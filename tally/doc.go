// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally counts votes for a fixed slate of candidates.

# Roster

Candidates are identified by their ballot position, assigned 1..N in the
order the names are given. The roster never changes after construction:

	t, err := tally.New([]string{"John", "Jane", "Bob", "Alice"})

NewDefault builds the same four-candidate slate.

# Vote Slots

A tally starts with one vote slot per candidate. Each CastVote or SkipVote
consumes a slot; once none remain, both are no-ops:

	t.CastVote(1) // John +1, Remaining() 4 → 3
	t.SkipVote()  // Remaining() 3 → 2
	t.CastVote(9) // unknown position, ignored

Reset restores the slots without clearing counts, so totals accumulate
across cycles:

	t.Reset()
	t.IsVotingOpen() // true

# Totals

  - TotalVotes: sum of candidate counts
  - BallotsUsed: accepted votes and skips across all cycles
  - Leaders: candidates sharing the highest non-zero count
*/
package tally

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

// Render writes the screen for the snapshot's state
func Render(w io.Writer, snap session.Snapshot) error {
	var b strings.Builder

	switch snap.State {
	case session.StateMainMenu:
		renderMainMenu(&b, snap)
	case session.StateVotingOpen:
		renderVoting(&b, snap)
	case session.StateResultsShown:
		renderResults(&b, snap)
	case session.StateConfirmingExit:
		b.WriteString("Are you sure you want to exit? [y/n]\n")
	case session.StateExited:
		b.WriteString("Goodbye.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderMainMenu(b *strings.Builder, snap session.Snapshot) {
	b.WriteString("MAIN MENU\n\n")
	b.WriteString("  [v] Vote Again\n")
	b.WriteString("  [g] Go to Voting\n")
	b.WriteString("  [q] Exit\n\n")
	renderTotals(b, snap)
}

func renderVoting(b *strings.Builder, snap session.Snapshot) {
	b.WriteString("Select a candidate to vote or Skip:\n\n")
	for _, c := range snap.Candidates {
		fmt.Fprintf(b, "  [%d] %s\n", c.Position, c.Name)
	}
	b.WriteString("  [s] Skip\n\n")

	current := snap.Allotment - snap.Remaining + 1
	fmt.Fprintf(b, "Casting your %s of %s.\n",
		humanize.Ordinal(current), english.Plural(snap.Allotment, "vote", ""))
	fmt.Fprintf(b, "Remaining Votes: %s\n", humanize.Comma(int64(snap.Remaining)))
}

func renderResults(b *strings.Builder, snap session.Snapshot) {
	b.WriteString("Voting has ended. Final results:\n\n")
	renderTotals(b, snap)

	if len(snap.Leaders) > 0 {
		names := make([]string, len(snap.Leaders))
		for i, c := range snap.Leaders {
			names[i] = c.Name
		}
		label := "Leading"
		if len(names) > 1 {
			label = "Tied for the lead"
		}
		fmt.Fprintf(b, "%s: %s\n", label, english.OxfordWordSeries(names, "and"))
	}

	b.WriteString("\nPress Enter to return to the main menu, or q to exit.\n")
}

func renderTotals(b *strings.Builder, snap session.Snapshot) {
	for _, c := range snap.Candidates {
		fmt.Fprintf(b, "%s: %s\n", c.Name, formatVotes(c))
	}
	fmt.Fprintf(b, "Overall Total Votes: %s\n", humanize.Comma(int64(snap.TotalVotes)))
}

func formatVotes(c tally.Candidate) string {
	return humanize.Comma(int64(c.Votes)) + " " + english.PluralWord(c.Votes, "vote", "")
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/events"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"
)

// RoundRenderer implements the events.Listener interface to print rounds to the console.
type RoundRenderer struct {
	out io.Writer
}

// NewRoundRenderer creates a renderer writing to out.
func NewRoundRenderer(out io.Writer) *RoundRenderer {
	return &RoundRenderer{out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *RoundRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.SessionStartEvent:
		C.Header.Fprintln(r.out, "Welcome to Rock, Paper, Scissors, Lizard, Spock!")
		fmt.Fprintln(r.out, strings.Repeat("=", 50))
		fmt.Fprintf(r.out, "Pick a number 1-%d or type a name. Type 'quit' to leave.\n", len(event.Choices))
	case events.RoundPlayedEvent:
		r.renderRound(event)
	case events.SessionEndEvent:
		C.Info.Fprintln(r.out, "\nThanks for playing! Goodbye!")
	}
}

func (r *RoundRenderer) renderRound(event events.RoundPlayedEvent) {
	fmt.Fprintf(r.out, "\nYou chose: %s\n", ColorizeChoice(event.User))
	fmt.Fprintf(r.out, "Computer chose: %s\n", ColorizeChoice(event.Computer))

	switch event.Outcome {
	case rules.UserWins:
		C.Win.Fprintln(r.out, event.Outcome.Message())
	case rules.ComputerWins:
		C.Lose.Fprintln(r.out, event.Outcome.Message())
	default:
		C.Tie.Fprintln(r.out, event.Outcome.Message())
	}
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/events"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/game"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

var (
	errQuit         = errors.New("quit")
	errInvalidThrow = errors.New("not a valid throw")
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
	out  io.Writer
}

// NewCLI creates a new command-line interface manager writing to out.
func NewCLI(log *logrus.Logger, out io.Writer) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completeThrow)
	return &CLI{
		log:  log,
		line: line,
		out:  out,
	}
}

// Close restores the terminal.
func (c *CLI) Close() error {
	return c.line.Close()
}

// Play runs the interactive game loop until the player quits.
func (c *CLI) Play(g *game.Game) error {
	renderer := NewRoundRenderer(c.out)
	g.EventManager.Subscribe(renderer)

	g.EventManager.Publish(events.SessionStartEvent{Choices: rules.All()})
	rounds := 0
	defer func() {
		g.EventManager.Publish(events.SessionEndEvent{Rounds: rounds})
	}()

	for {
		c.printMenu()
		input, err := c.line.Prompt("What do you throw? ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)

		choice, err := parseThrow(input)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.log.Debugf("Rejected throw %q: %v", input, err)
			C.Warn.Fprintf(c.out, "'%s' is not a valid throw. Pick a number 1-%d or a name.\n", input, len(rules.All()))
			continue
		}

		g.Play(choice)
		rounds++
	}
}

// parseThrow accepts a menu number, a choice name in any case, or a quit
// command.
func parseThrow(input string) (rules.Choice, error) {
	token := strings.ToLower(strings.TrimSpace(input))
	switch token {
	case "quit", "q", "exit":
		return 0, errQuit
	}

	all := rules.All()
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= len(all) {
			return all[n-1], nil
		}
		return 0, errInvalidThrow
	}
	if choice, ok := rules.Parse(token); ok {
		return choice, nil
	}
	return 0, errInvalidThrow
}

func completeThrow(line string) []string {
	prefix := strings.ToLower(line)
	var matches []string
	for _, token := range append(rules.Tokens(), "quit") {
		if strings.HasPrefix(token, prefix) {
			matches = append(matches, token)
		}
	}
	return matches
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Win, Lose, Tie, Info, Warn, Header, Prompt *color.Color
}{
	Win:    color.New(color.FgGreen),
	Lose:   color.New(color.FgRed),
	Tie:    color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// ChoiceColors gives each throw its own color in the terminal.
var ChoiceColors = map[rules.Choice]*color.Color{
	rules.Rock:     color.New(color.FgHiBlack, color.Bold),
	rules.Paper:    color.New(color.FgWhite, color.Bold),
	rules.Scissors: color.New(color.FgRed, color.Bold),
	rules.Lizard:   color.New(color.FgGreen, color.Bold),
	rules.Spock:    color.New(color.FgBlue, color.Bold),
}

// ColorizeChoice returns the upper-cased token in the throw's color.
func ColorizeChoice(c rules.Choice) string {
	name := strings.ToUpper(c.String())
	if col, ok := ChoiceColors[c]; ok {
		return col.Sprint(name)
	}
	return name
}

// RenderRules prints the win relation as a table.
func RenderRules(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Rock, Paper, Scissors, Lizard, Spock")
	t.AppendHeader(table.Row{"#", "Choice", "Beats", "Loses To"})

	for i, c := range rules.All() {
		var beats, losesTo []string
		for _, other := range rules.All() {
			if c.Beats(other) {
				beats = append(beats, other.String())
			} else if other.Beats(c) {
				losesTo = append(losesTo, other.String())
			}
		}
		t.AppendRow(table.Row{i + 1, c.String(), strings.Join(beats, ", "), strings.Join(losesTo, ", ")})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

// --- Prompting and Usage ---

func (c *CLI) printMenu() {
	C.Header.Fprintln(c.out, "\nChoose your throw:")
	for i, choice := range rules.All() {
		fmt.Fprintf(c.out, " %2d: %s\n", i+1, ColorizeChoice(choice))
	}
	fmt.Fprintf(c.out, " %2s: %s\n", "q", "Quit")
}

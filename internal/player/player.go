package player

import (
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/ai"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"
)

// Player is the interface for anything that can take the opponent's seat.
type Player interface {
	Name() string
	Throw() rules.Choice
}

// ComputerPlayer throws whatever its Chooser picks.
type ComputerPlayer struct {
	name    string
	chooser ai.Chooser
}

// NewComputerPlayer creates the computer opponent.
func NewComputerPlayer(chooser ai.Chooser) *ComputerPlayer {
	return &ComputerPlayer{name: "Computer", chooser: chooser}
}

func (c *ComputerPlayer) Name() string        { return c.name }
func (c *ComputerPlayer) Throw() rules.Choice { return c.chooser.Choose() }

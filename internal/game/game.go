package game

import (
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/events"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/player"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"

	"github.com/sirupsen/logrus"
)

// Round is the result of a single throw against the computer.
type Round struct {
	User     rules.Choice
	Computer rules.Choice
	Outcome  rules.Outcome
}

// Game pairs the user against a computer opponent. It holds no per-round
// state, so Play is safe to call from concurrent requests.
type Game struct {
	Opponent     player.Player
	EventManager *events.Manager
	log          *logrus.Logger
}

// Play draws the opponent's throw, resolves the round and publishes it.
// user must already be a valid choice.
func (g *Game) Play(user rules.Choice) Round {
	computer := g.Opponent.Throw()
	round := Round{
		User:     user,
		Computer: computer,
		Outcome:  rules.Resolve(user, computer),
	}
	g.log.WithFields(logrus.Fields{
		"user":     round.User.String(),
		"computer": round.Computer.String(),
		"result":   round.Outcome.String(),
	}).Debug("round resolved")

	g.EventManager.Publish(events.RoundPlayedEvent{
		User:     round.User,
		Computer: round.Computer,
		Outcome:  round.Outcome,
	})
	return round
}

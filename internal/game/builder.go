package game

import (
	"errors"
	"math/rand"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/ai"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/events"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/player"

	"github.com/sirupsen/logrus"
)

// ErrNoOpponent is returned by Build when neither a chooser nor a random
// source was supplied.
var ErrNoOpponent = errors.New("no opponent configured: supply a chooser or a random source")

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	chooser      ai.Chooser
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithChooser replaces the random opponent, typically with a deterministic one.
func (b *GameBuilder) WithChooser(c ai.Chooser) *GameBuilder {
	b.chooser = c
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	chooser := b.chooser
	if chooser == nil {
		if b.rand == nil {
			return nil, ErrNoOpponent
		}
		chooser = ai.NewRandomChooser(b.rand)
	}

	log := b.log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Game{
		Opponent:     player.NewComputerPlayer(chooser),
		EventManager: b.eventManager,
		log:          log,
	}, nil
}

package ai

import (
	"math/rand"
	"sync"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"
)

// Chooser defines an interface for picking the computer's throw.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose() rules.Choice
}

// --- Implementations ---

// RandomChooser picks uniformly from the choice domain. It is safe for
// concurrent use; the wrapped *rand.Rand is not.
type RandomChooser struct {
	mu      sync.Mutex
	rand    *rand.Rand
	choices []rules.Choice
}

// NewRandomChooser creates a new random chooser drawing from rand.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand, choices: rules.All()}
}

func (r *RandomChooser) Choose() rules.Choice {
	r.mu.Lock()
	n := r.rand.Intn(len(r.choices))
	r.mu.Unlock()
	return r.choices[n]
}

// SequenceChooser replays a fixed list of throws in order, wrapping around
// at the end. This is used for predictable testing.
type SequenceChooser struct {
	mu    sync.Mutex
	seq   []rules.Choice
	index int
}

// NewSequenceChooser returns a chooser cycling through seq. An empty
// sequence always yields rules.Rock.
func NewSequenceChooser(seq ...rules.Choice) *SequenceChooser {
	return &SequenceChooser{seq: seq}
}

func (s *SequenceChooser) Choose() rules.Choice {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.seq) == 0 {
		return rules.Rock
	}
	c := s.seq[s.index%len(s.seq)]
	s.index++
	return c
}

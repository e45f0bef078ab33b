package ai

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"
)

func TestRandomChooser(t *testing.T) {
	// GIVEN a chooser with a predictable random source
	chooser := NewRandomChooser(rand.New(rand.NewSource(1)))

	// WHEN we draw 100 throws
	seen := make(map[rules.Choice]int)
	for i := 0; i < 100; i++ {
		seen[chooser.Choose()]++
	}

	t.Run("every throw is a valid choice", func(t *testing.T) {
		for c := range seen {
			if !rules.IsValid(c.String()) {
				t.Errorf("chooser produced an invalid choice %d", c)
			}
		}
	})

	t.Run("the throws are spread over the domain", func(t *testing.T) {
		if len(seen) < 3 {
			t.Errorf("expected at least 3 distinct throws in 100 draws, saw %d", len(seen))
		}
	})
}

func TestRandomChooserIsRoughlyUniform(t *testing.T) {
	chooser := NewRandomChooser(rand.New(rand.NewSource(42)))
	const draws = 50000
	counts := make(map[rules.Choice]int)
	for i := 0; i < draws; i++ {
		counts[chooser.Choose()]++
	}
	expected := draws / len(rules.All())
	for _, c := range rules.All() {
		// 10% tolerance is far outside the sampling noise at this size.
		if diff := counts[c] - expected; diff > expected/10 || diff < -expected/10 {
			t.Errorf("%s drawn %d times, expected about %d", c, counts[c], expected)
		}
	}
}

func TestRandomChooserConcurrentUse(t *testing.T) {
	chooser := NewRandomChooser(rand.New(rand.NewSource(7)))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if c := chooser.Choose(); c < rules.Rock || c > rules.Spock {
					t.Errorf("out of range choice %d", c)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSequenceChooser(t *testing.T) {
	chooser := NewSequenceChooser(rules.Spock, rules.Paper)
	want := []rules.Choice{rules.Spock, rules.Paper, rules.Spock, rules.Paper}
	for i, w := range want {
		if got := chooser.Choose(); got != w {
			t.Errorf("draw %d: expected %s, got %s", i, w, got)
		}
	}

	if got := NewSequenceChooser().Choose(); got != rules.Rock {
		t.Errorf("empty sequence: expected rock, got %s", got)
	}
}

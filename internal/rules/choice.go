package rules

// Choice is one of the five throws using a typed enum.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
	Lizard
	Spock
)

var choiceNames = [...]string{"rock", "paper", "scissors", "lizard", "spock"}

// beats maps each choice to the two choices it defeats.
var beats = map[Choice][2]Choice{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Lizard:   {Paper, Spock},
	Spock:    {Rock, Scissors},
}

// String returns the canonical lowercase token of a Choice.
func (c Choice) String() string {
	if c < Rock || c > Spock {
		return "unknown"
	}
	return choiceNames[c]
}

// MarshalText lets choices serialize as their token in JSON payloads.
func (c Choice) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Defeats returns the two choices c beats.
func (c Choice) Defeats() [2]Choice {
	return beats[c]
}

// Beats reports whether c defeats other.
func (c Choice) Beats(other Choice) bool {
	for _, d := range beats[c] {
		if d == other {
			return true
		}
	}
	return false
}

// All returns every choice in canonical order.
func All() []Choice {
	return []Choice{Rock, Paper, Scissors, Lizard, Spock}
}

// Tokens returns the canonical tokens in the same order as All.
func Tokens() []string {
	tokens := make([]string, len(choiceNames))
	copy(tokens, choiceNames[:])
	return tokens
}

// Parse looks up a token. Matching is exact and case-sensitive; callers
// fold case before calling it.
func Parse(token string) (Choice, bool) {
	for i, name := range choiceNames {
		if name == token {
			return Choice(i), true
		}
	}
	return 0, false
}

// IsValid reports whether token is one of the canonical choice tokens.
func IsValid(token string) bool {
	_, ok := Parse(token)
	return ok
}

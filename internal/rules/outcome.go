package rules

// Outcome is the result of a single round from the user's point of view.
type Outcome int

const (
	UserWins Outcome = iota
	ComputerWins
	Tie
)

// String returns the serialized form used in API responses.
func (o Outcome) String() string {
	switch o {
	case UserWins:
		return "user"
	case ComputerWins:
		return "computer"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// MarshalText serializes an Outcome as "user", "computer" or "tie".
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Message is the human-readable line shown for an outcome.
func (o Outcome) Message() string {
	switch o {
	case UserWins:
		return "You win!"
	case ComputerWins:
		return "Computer wins!"
	default:
		return "It's a tie!"
	}
}

// Resolve decides a round. Both choices must already be valid members of
// the domain.
func Resolve(user, computer Choice) Outcome {
	if user == computer {
		return Tie
	}
	if user.Beats(computer) {
		return UserWins
	}
	return ComputerWins
}

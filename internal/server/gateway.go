package server

import (
	"errors"
	"strings"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrMissingChoice    = errors.New("missing choice in request body")
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrMalformedRequest = errors.New("malformed request body")
)

// clientMessages are the exact error strings clients see.
var clientMessages = map[error]string{
	ErrMissingChoice:    "Missing choice in request body",
	ErrInvalidChoice:    "Invalid choice",
	ErrMalformedRequest: "Malformed request body",
}

// playRequest is the JSON body of POST /play. A nil Choice means the field
// was absent or null.
type playRequest struct {
	Choice *string `json:"choice"`
}

// PlayResponse is returned for every successful round.
type PlayResponse struct {
	UserChoice     rules.Choice  `json:"user_choice"`
	ComputerChoice rules.Choice  `json:"computer_choice"`
	Result         rules.Outcome `json:"result"`
	Message        string        `json:"message"`
}

// ErrorResponse is the 400 payload. ValidChoices lets clients correct themselves.
type ErrorResponse struct {
	Error        string   `json:"error"`
	ValidChoices []string `json:"valid_choices,omitempty"`
}

// normalize lower-cases a user token. A Caser is not safe for concurrent
// use, so one is built per call.
func normalize(token string) string {
	return cases.Lower(language.Und).String(token)
}

// parseChoice folds case and validates a user-supplied token.
func parseChoice(token string) (rules.Choice, error) {
	c, ok := rules.Parse(normalize(token))
	if !ok {
		return 0, ErrInvalidChoice
	}
	return c, nil
}

// badRequest builds the 400 body for one of the gateway's client errors.
func badRequest(err error) ErrorResponse {
	msg, ok := clientMessages[err]
	if !ok {
		msg = err.Error()
	}
	return ErrorResponse{Error: msg, ValidChoices: rules.Tokens()}
}

// availableEndpoints is listed in the 404 payload.
var availableEndpoints = map[string]string{
	"POST /play":          `Play with JSON body: {"choice": "rock"}`,
	"POST /play/<choice>": "Play with URL path: /play/rock",
	"GET /choices":        "Get all valid choices",
	"GET /health":         "Health check",
}

func isBlank(body []byte) bool {
	return strings.TrimSpace(string(body)) == ""
}

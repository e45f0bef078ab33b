package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/ai"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/config"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/game"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// setupTestServer builds a gateway whose computer always throws the given sequence.
func setupTestServer(t *testing.T, seq ...rules.Choice) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	g, err := game.NewBuilder(log, nil).WithChooser(ai.NewSequenceChooser(seq...)).Build()
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}
	srv, err := New(config.Default(), g, log)
	if err != nil {
		t.Fatalf("Failed to build server: %v", err)
	}
	return srv.App()
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	defer resp.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("%s %s: response is not JSON: %v", method, target, err)
	}
	return resp.StatusCode, payload
}

func TestPlayWithJSONBody(t *testing.T) {
	app := setupTestServer(t, rules.Scissors)

	for _, tt := range []struct {
		input, user, result, message string
	}{
		{"rock", "rock", "user", "You win!"},
		{"paper", "paper", "computer", "Computer wins!"},
		{"scissors", "scissors", "tie", "It's a tie!"},
		{"lizard", "lizard", "computer", "Computer wins!"},
		{"spock", "spock", "user", "You win!"},
		{"ROCK", "rock", "user", "You win!"},
		{"RoCk", "rock", "user", "You win!"},
	} {
		t.Run(tt.input, func(t *testing.T) {
			status, body := do(t, app, http.MethodPost, "/play", `{"choice": "`+tt.input+`"}`)
			if status != http.StatusOK {
				t.Fatalf("expected 200, got %d (%v)", status, body)
			}
			if body["user_choice"] != tt.user {
				t.Errorf("expected user_choice %q, got %v", tt.user, body["user_choice"])
			}
			if body["computer_choice"] != "scissors" {
				t.Errorf("expected computer_choice scissors, got %v", body["computer_choice"])
			}
			if body["result"] != tt.result {
				t.Errorf("expected result %q, got %v", tt.result, body["result"])
			}
			if body["message"] != tt.message {
				t.Errorf("expected message %q, got %v", tt.message, body["message"])
			}
		})
	}
}

func TestPlayWithPath(t *testing.T) {
	app := setupTestServer(t, rules.Rock)

	status, body := do(t, app, http.MethodPost, "/play/SPOCK", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if body["user_choice"] != "spock" || body["computer_choice"] != "rock" || body["result"] != "user" {
		t.Errorf("unexpected body %v", body)
	}

	status, body = do(t, app, http.MethodPost, "/play/banana", "")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["error"] != "Invalid choice" {
		t.Errorf("expected Invalid choice, got %v", body["error"])
	}
}

func TestPlayRejections(t *testing.T) {
	app := setupTestServer(t, rules.Rock)

	tests := []struct {
		name, body, wantError string
	}{
		{"invalid choice", `{"choice": "banana"}`, "Invalid choice"},
		{"empty choice", `{"choice": ""}`, "Invalid choice"},
		{"padded choice", `{"choice": " rock"}`, "Invalid choice"},
		{"quit is not a throw", `{"choice": "quit"}`, "Invalid choice"},
		{"missing field", `{}`, "Missing choice in request body"},
		{"null field", `{"choice": null}`, "Missing choice in request body"},
		{"empty body", ``, "Missing choice in request body"},
		{"invalid json", `invalid json`, "Malformed request body"},
		{"non-string choice", `{"choice": 5}`, "Malformed request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, http.MethodPost, "/play", tt.body)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
			if body["error"] != tt.wantError {
				t.Errorf("expected error %q, got %v", tt.wantError, body["error"])
			}
			valid, ok := body["valid_choices"].([]any)
			if !ok || len(valid) != 5 {
				t.Errorf("expected 5 valid_choices, got %v", body["valid_choices"])
			}
		})
	}
}

func TestChoicesAndHealth(t *testing.T) {
	app := setupTestServer(t)

	status, body := do(t, app, http.MethodGet, "/choices", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	got, ok := body["choices"].([]any)
	if !ok || len(got) != 5 {
		t.Fatalf("expected 5 choices, got %v", body["choices"])
	}
	for i, want := range rules.Tokens() {
		if got[i] != want {
			t.Errorf("choice %d: expected %q, got %v", i, want, got[i])
		}
	}

	status, body = do(t, app, http.MethodGet, "/health", "")
	if status != http.StatusOK || body["status"] != "ok" {
		t.Errorf("expected 200 {status: ok}, got %d %v", status, body)
	}
}

func TestRoutingErrors(t *testing.T) {
	app := setupTestServer(t)

	t.Run("unknown endpoint", func(t *testing.T) {
		status, body := do(t, app, http.MethodGet, "/nonexistent", "")
		if status != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", status)
		}
		if body["error"] != "Endpoint not found" {
			t.Errorf("expected Endpoint not found, got %v", body["error"])
		}
		if _, ok := body["available_endpoints"].(map[string]any); !ok {
			t.Errorf("expected available_endpoints, got %v", body["available_endpoints"])
		}
	})

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		t.Run(method+" on /play", func(t *testing.T) {
			status, body := do(t, app, method, "/play", "")
			if status != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", status)
			}
			if body["error"] != "Method not allowed" {
				t.Errorf("expected Method not allowed, got %v", body["error"])
			}
		})
	}
}

func TestFrontEndAndRequestID(t *testing.T) {
	app := setupTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html, got %q", ct)
	}
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("expected a request id header")
	}
}

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{"ROCK": "rock", "RoCk": "rock", "rock": "rock", "Spock": "spock"} {
		c, err := parseChoice(in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
			continue
		}
		if c.String() != want {
			t.Errorf("%q: expected %q, got %q", in, want, c)
		}
	}

	for _, in := range []string{"", "banana", "123", "rock!", " rock", "rock ", "quit"} {
		if _, err := parseChoice(in); err != ErrInvalidChoice {
			t.Errorf("%q: expected ErrInvalidChoice, got %v", in, err)
		}
	}
}

package server

import (
	"errors"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/game"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Handler serves the game endpoints.
type Handler struct {
	game *game.Game
	log  *logrus.Logger
}

// NewHandler creates the handler set around a built game.
func NewHandler(g *game.Game, log *logrus.Logger) *Handler {
	return &Handler{game: g, log: log}
}

// PlayWithBody handles POST /play with {"choice": "rock"}.
func (h *Handler) PlayWithBody(c *fiber.Ctx) error {
	body := c.Body()
	if isBlank(body) {
		return h.reject(c, ErrMissingChoice)
	}

	var req playRequest
	if err := c.App().Config().JSONDecoder(body, &req); err != nil {
		h.log.WithError(err).Debug("unparsable play body")
		return h.reject(c, ErrMalformedRequest)
	}
	if req.Choice == nil {
		return h.reject(c, ErrMissingChoice)
	}
	return h.play(c, *req.Choice)
}

// PlayWithPath handles POST /play/:choice.
func (h *Handler) PlayWithPath(c *fiber.Ctx) error {
	return h.play(c, c.Params("choice"))
}

// play is shared by both entry points so they cannot drift apart.
func (h *Handler) play(c *fiber.Ctx, token string) error {
	user, err := parseChoice(token)
	if err != nil {
		return h.reject(c, err)
	}

	round := h.game.Play(user)
	return c.JSON(PlayResponse{
		UserChoice:     round.User,
		ComputerChoice: round.Computer,
		Result:         round.Outcome,
		Message:        round.Outcome.Message(),
	})
}

// Choices handles GET /choices.
func (h *Handler) Choices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"choices": rules.Tokens()})
}

// Health handles GET /health.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) reject(c *fiber.Ctx, err error) error {
	if !errors.Is(err, ErrInvalidChoice) && !errors.Is(err, ErrMissingChoice) && !errors.Is(err, ErrMalformedRequest) {
		return err
	}
	h.log.WithFields(logrus.Fields{"path": c.Path(), "reason": err.Error()}).Debug("play rejected")
	return c.Status(fiber.StatusBadRequest).JSON(badRequest(err))
}

// ErrorHandler renders routing errors and anything unexpected as JSON.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error":               "Endpoint not found",
					"available_endpoints": availableEndpoints,
				})
			case fiber.StatusMethodNotAllowed:
				return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
					"error": "Method not allowed",
				})
			default:
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
		}

		log.WithError(err).WithField("path", c.Path()).Error("unhandled request error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

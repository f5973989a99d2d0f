package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const passwordPrompt = "Hi! Send the password to start practising."

// handleStart handles /start and the "start over" button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if !h.authService.IsAuthorized(userID) {
		return c.Send(passwordPrompt)
	}

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	if err := h.startSession(c.Chat()); err != nil {
		h.logger.Error("Failed to start session", zap.Error(err))
		return c.Send("Could not load the deck. Try again later.")
	}
	return nil
}

// handleText handles the password reply; any other text is ignored
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if h.authService.IsAuthorized(userID) {
		return c.Send("Use the buttons under the card, or /start for a new one.")
	}

	if !h.authService.CheckPassword(text) {
		return c.Send("Wrong password.")
	}

	h.authService.AuthorizeUser(userID)
	h.logger.Info("User authorized", zap.Int64("user_id", userID))

	if err := h.startSession(c.Chat()); err != nil {
		h.logger.Error("Failed to start session", zap.Error(err))
		return c.Send("Could not load the deck. Try again later.")
	}
	return nil
}

package handler

import (
	"errors"
	"strings"
	"unicode"

	"flashcards/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback routes callbacks whose Unique did not reach a button handler
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	route := callback.Unique
	if route == "" {
		route = data
	}

	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if !h.authService.IsAuthorized(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: passwordPrompt, ShowAlert: true})
	}

	switch route {
	case btnNext.Unique:
		return h.handleNext(c)
	case btnKnown.Unique:
		return h.handleKnown(c)
	case btnFlip.Unique:
		return h.handleFlip(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleNext keeps the current word in the deck and shows another
func (h *Handler) handleNext(c tele.Context) error {
	sess := h.sessionFor(c.Chat().ID)
	if sess == nil {
		return respondStale(c)
	}

	if err := sess.Next(); err != nil {
		h.logger.Error("Failed to show next card", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not load the next card"})
	}
	return c.Respond()
}

// handleKnown removes the current word from the deck and shows another
func (h *Handler) handleKnown(c tele.Context) error {
	sess := h.sessionFor(c.Chat().ID)
	if sess == nil {
		return respondStale(c)
	}

	card := sess.Current()
	err := sess.MarkKnown()
	switch {
	case errors.Is(err, session.ErrNoCard):
		return c.Respond(&tele.CallbackResponse{Text: "No card on display"})
	case err != nil:
		h.logger.Error("Failed to mark word known",
			zap.Error(err),
			zap.String("source", card.Pair.Source),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	h.logger.Info("Word known",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("source", card.Pair.Source),
	)
	return c.Respond(&tele.CallbackResponse{Text: "✅ " + card.Pair.Source})
}

// handleFlip reveals the back before the timer does
func (h *Handler) handleFlip(c tele.Context) error {
	sess := h.sessionFor(c.Chat().ID)
	if sess == nil {
		return respondStale(c)
	}

	if err := sess.Reveal(); err != nil && !errors.Is(err, session.ErrNoCard) {
		h.logger.Error("Failed to reveal card", zap.Error(err))
	}
	return c.Respond()
}

// handleRestart re-seeds the finished deck from the master list
func (h *Handler) handleRestart(c tele.Context) error {
	sess := h.sessionFor(c.Chat().ID)
	if sess == nil {
		return respondStale(c)
	}
	if !sess.Complete() {
		return c.Respond(&tele.CallbackResponse{Text: "The deck is not finished yet"})
	}

	if err := h.deck.Reset(); err != nil {
		h.logger.Error("Failed to reset deck", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not restart the deck"})
	}

	h.logger.Info("Deck restarted", zap.Int64("user_id", c.Sender().ID))

	if err := h.startSession(c.Chat()); err != nil {
		h.logger.Error("Failed to start session", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not load the deck"})
	}
	return c.Respond()
}

// respondStale answers buttons of a card that no longer drives the deck
func respondStale(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{
		Text:      "This card is no longer active. Send /start.",
		ShowAlert: true,
	})
}

package handler

import (
	"fmt"
	"strings"

	"flashcards/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// messenger is the part of *tele.Bot the presenter uses
type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// cardPresenter renders a session as one message that is edited in place
type cardPresenter struct {
	api    messenger
	chat   *tele.Chat
	labels domain.Labels
	logger *zap.Logger

	card *tele.Message
}

func newCardPresenter(api messenger, chat *tele.Chat, labels domain.Labels, logger *zap.Logger) *cardPresenter {
	return &cardPresenter{
		api:    api,
		chat:   chat,
		labels: labels,
		logger: logger,
	}
}

func (p *cardPresenter) ShowFront(pair domain.WordPair) {
	p.render(cardText(p.labels.Source, pair.Source), cardMarkup(domain.FaceFront))
}

func (p *cardPresenter) ShowBack(pair domain.WordPair) {
	p.render(cardText(p.labels.Target, pair.Target), cardMarkup(domain.FaceBack))
}

func (p *cardPresenter) ShowComplete() {
	p.render("🎉 Deck complete!\n\nEvery word is marked known.", completeMarkup())
}

func (p *cardPresenter) Warn(err error) {
	if _, sendErr := p.api.Send(p.chat, "⚠️ Progress not saved, will retry on the next known word."); sendErr != nil {
		p.logger.Warn("Failed to send warning", zap.Error(sendErr), zap.NamedError("cause", err))
	}
}

// render edits the card message, falling back to a new message
func (p *cardPresenter) render(text string, markup *tele.ReplyMarkup) {
	if p.card != nil {
		msg, err := p.api.Edit(p.card, text, markup)
		if err == nil {
			if msg != nil {
				p.card = msg
			}
			return
		}
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		p.logger.Warn("Failed to edit card, sending new",
			zap.Error(err),
			zap.Int64("chat_id", p.chat.ID),
		)
	}

	msg, err := p.api.Send(p.chat, text, markup)
	if err != nil {
		p.logger.Error("Failed to send card", zap.Error(err), zap.Int64("chat_id", p.chat.ID))
		return
	}
	p.card = msg
}

// cardText formats one face of a card
func cardText(label, word string) string {
	return fmt.Sprintf("%s\n\n%s", label, word)
}

package handler

import (
	"sync"

	"flashcards/internal/domain"
	"flashcards/internal/middleware"
	"flashcards/internal/service"
	"flashcards/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions.
// There is a single deck, so only the chat that sent the latest /start drives it.
type Handler struct {
	bot         *tele.Bot
	api         messenger
	authService *service.AuthService
	deck        session.Deck
	sessionCfg  session.Config
	labels      domain.Labels
	logger      *zap.Logger

	mu      sync.Mutex
	chatID  int64
	session *session.Session
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	deck session.Deck,
	sessionCfg session.Config,
	labels domain.Labels,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		api:         bot,
		authService: authService,
		deck:        deck,
		sessionCfg:  sessionCfg,
		labels:      labels,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages (password)
	h.bot.Handle(tele.OnText, h.handleText)

	// Card buttons require an authorized user
	cards := h.bot.Group()
	cards.Use(middleware.AuthMiddleware(h.authService, h.logger))
	cards.Handle(&btnNext, h.handleNext)
	cards.Handle(&btnKnown, h.handleKnown)
	cards.Handle(&btnFlip, h.handleFlip)
	cards.Handle(&btnRestart, h.handleRestart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Stop cancels the pending reveal of the active session
func (h *Handler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session != nil {
		h.session.Stop()
	}
}

// startSession hands the deck to chat and shows the first card
func (h *Handler) startSession(chat *tele.Chat) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session != nil {
		h.session.Stop()
		if h.chatID != chat.ID {
			h.logger.Info("Deck moved to another chat",
				zap.Int64("from_chat", h.chatID),
				zap.Int64("to_chat", chat.ID),
			)
		}
	}

	presenter := newCardPresenter(h.api, chat, h.labels, h.logger)
	h.session = session.New(h.deck, presenter, h.sessionCfg, h.logger)
	h.chatID = chat.ID

	return h.session.Next()
}

// sessionFor returns the session driven by chatID, or nil
func (h *Handler) sessionFor(chatID int64) *session.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil || h.chatID != chatID {
		return nil
	}
	return h.session
}

// Inline keyboard buttons
var (
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "❌ Next",
	}
	btnKnown = tele.Btn{
		Unique: "known",
		Text:   "✅ Known",
	}
	btnFlip = tele.Btn{
		Unique: "flip",
		Text:   "🔄 Flip",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "🏠 Start over",
	}
)

// cardMarkup returns the keyboard shown under a card
func cardMarkup(face domain.Face) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	if face == domain.FaceFront {
		menu.Inline(
			menu.Row(btnFlip),
			menu.Row(btnNext, btnKnown),
		)
		return menu
	}
	menu.Inline(menu.Row(btnNext, btnKnown))
	return menu
}

// completeMarkup returns the keyboard shown once the deck is done
func completeMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnRestart))
	return menu
}

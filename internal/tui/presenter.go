package tui

import (
	"flashcards/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	frontMsg     struct{ pair domain.WordPair }
	backMsg      struct{ pair domain.WordPair }
	completeMsg  struct{}
	warnMsg      struct{ err error }
	actionErrMsg struct{ err error }
)

// Presenter forwards session callbacks into the Bubble Tea event loop.
// The channel is drained by waitForEvent, so calls never wait on Update.
type Presenter struct {
	events chan tea.Msg
}

// NewPresenter creates a presenter with a buffered event channel
func NewPresenter() *Presenter {
	return &Presenter{events: make(chan tea.Msg, 16)}
}

func (p *Presenter) ShowFront(pair domain.WordPair) { p.events <- frontMsg{pair: pair} }
func (p *Presenter) ShowBack(pair domain.WordPair)  { p.events <- backMsg{pair: pair} }
func (p *Presenter) ShowComplete()                  { p.events <- completeMsg{} }
func (p *Presenter) Warn(err error)                 { p.events <- warnMsg{err: err} }

// waitForEvent delivers the next presenter event as a message
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

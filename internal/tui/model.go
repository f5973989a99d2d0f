package tui

import (
	"errors"
	"fmt"

	"flashcards/internal/domain"
	"flashcards/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Actions is what the model can ask of a session
type Actions interface {
	Next() error
	MarkKnown() error
	Reveal() error
	Stop()
}

// Counter reports how many words are left
type Counter interface {
	Len() int
}

var (
	backgroundColor = lipgloss.Color("#B1DDC6")
	backCardColor   = lipgloss.Color("#91C2AF")

	cardStyle = lipgloss.NewStyle().
			Width(40).
			Padding(2, 4).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder())
	titleStyle = lipgloss.NewStyle().Italic(true)
	wordStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E07A5F"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model for a single card view. It reads presenter
// events from a channel and runs session actions as commands.
type Model struct {
	actions Actions
	counter Counter
	events  <-chan tea.Msg
	labels  domain.Labels
	keys    KeyMap
	help    help.Model

	card     domain.Card
	complete bool
	warning  string
}

// New creates a model that drives actions and renders what presenter emits
func New(actions Actions, counter Counter, presenter *Presenter, labels domain.Labels) Model {
	return Model{
		actions: actions,
		counter: counter,
		events:  presenter.events,
		labels:  labels,
		keys:    DefaultKeyMap,
		help:    help.New(),
		card:    domain.Card{Face: domain.FaceNone},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.events),
		act(m.actions.Next),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.actions.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.warning = ""
			return m, act(m.actions.Next)
		case key.Matches(msg, m.keys.Known):
			m.warning = ""
			return m, act(m.actions.MarkKnown)
		case key.Matches(msg, m.keys.Flip):
			return m, act(m.actions.Reveal)
		}
		return m, nil

	case frontMsg:
		m.card = domain.Card{Pair: msg.pair, Face: domain.FaceFront}
		m.complete = false
		return m, waitForEvent(m.events)

	case backMsg:
		m.card = domain.Card{Pair: msg.pair, Face: domain.FaceBack}
		return m, waitForEvent(m.events)

	case completeMsg:
		m.card = domain.Card{Face: domain.FaceNone}
		m.complete = true
		return m, waitForEvent(m.events)

	case warnMsg:
		m.warning = warningText(msg.err)
		return m, waitForEvent(m.events)

	case actionErrMsg:
		if !errors.Is(msg.err, session.ErrNoCard) {
			m.warning = msg.err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	var body string
	switch {
	case m.complete:
		body = cardStyle.
			BorderForeground(backgroundColor).
			Render(titleStyle.Render("Deck complete") + "\n" + wordStyle.Render("Every word is marked known"))
	case m.card.Face == domain.FaceFront:
		body = cardStyle.
			BorderForeground(backgroundColor).
			Render(titleStyle.Render(m.labels.Source) + "\n" + wordStyle.Render(m.card.Pair.Source))
	case m.card.Face == domain.FaceBack:
		body = cardStyle.
			BorderForeground(backCardColor).
			Background(backCardColor).
			Render(titleStyle.Render(m.labels.Target) + "\n" + wordStyle.Render(m.card.Pair.Target))
	default:
		body = cardStyle.Render(dimStyle.Render("Loading deck…"))
	}

	lines := []string{body}
	if m.counter != nil {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("%d words left", m.counter.Len())))
	}
	if m.warning != "" {
		lines = append(lines, warnStyle.Render(m.warning))
	}
	lines = append(lines, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// act runs a session action off the update loop
func act(f func() error) tea.Cmd {
	return func() tea.Msg {
		if err := f(); err != nil {
			return actionErrMsg{err: err}
		}
		return nil
	}
}

func warningText(err error) string {
	if errors.Is(err, domain.ErrPersistence) {
		return "Progress not saved; it will be written with the next known word."
	}
	return err.Error()
}

package handler

import (
	"sync"

	"flashcards/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the parts of tele.Context the handlers use
type fakeContext struct {
	tele.Context

	sender    *tele.User
	chat      *tele.Chat
	callback  *tele.Callback
	text      string
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Chat() *tele.Chat         { return c.chat }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Text() string             { return c.text }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.responses = append(c.responses, nil)
		return nil
	}
	c.responses = append(c.responses, resp[0])
	return nil
}

func textContext(userID int64, text string) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: userID},
		chat:   &tele.Chat{ID: userID},
		text:   text,
	}
}

func callbackContext(userID int64, unique, data string) *fakeContext {
	return &fakeContext{
		sender:   &tele.User{ID: userID},
		chat:     &tele.Chat{ID: userID},
		callback: &tele.Callback{ID: "cb", Unique: unique, Data: data},
	}
}

// fakeMessenger records sent and edited card texts
type fakeMessenger struct {
	mu      sync.Mutex
	nextID  int
	sent    []string
	edits   []string
	editErr error
	sendErr error
}

func (m *fakeMessenger) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.nextID++
	m.sent = append(m.sent, what.(string))
	return &tele.Message{ID: m.nextID, Chat: to.(*tele.Chat)}, nil
}

func (m *fakeMessenger) Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editErr != nil {
		return nil, m.editErr
	}
	m.edits = append(m.edits, what.(string))
	return msg.(*tele.Message), nil
}

func (m *fakeMessenger) lastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.edits) > 0 {
		return m.edits[len(m.edits)-1]
	}
	if len(m.sent) > 0 {
		return m.sent[len(m.sent)-1]
	}
	return ""
}

// fakeDeck always picks the first word
type fakeDeck struct {
	mu     sync.Mutex
	words  []domain.WordPair
	master []domain.WordPair
	resets int
}

func (d *fakeDeck) PickRandom() (domain.WordPair, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.words) == 0 {
		return domain.WordPair{}, domain.ErrDeckExhausted
	}
	return d.words[0], nil
}

func (d *fakeDeck) MarkKnown(pair domain.WordPair) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, w := range d.words {
		if w == pair {
			d.words = append(d.words[:i], d.words[i+1:]...)
			return nil
		}
	}
	return domain.ErrWordNotFound
}

func (d *fakeDeck) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resets++
	d.words = append([]domain.WordPair(nil), d.master...)
	return nil
}

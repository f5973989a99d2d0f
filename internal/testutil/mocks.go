package testutil

import (
	"sync"

	"flashcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDeckRepository is a mock for DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) LoadDeck() ([]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockDeckRepository) SaveDeck(words []domain.WordPair) error {
	args := m.Called(words)
	return args.Error(0)
}

// MockMasterSource is a mock for MasterSource
type MockMasterSource struct {
	mock.Mock
}

func (m *MockMasterSource) LoadMaster() ([]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

// SeqPicker returns the queued indexes in order, then repeats the last one
type SeqPicker struct {
	Indexes []int
	pos     int
}

func (p *SeqPicker) Intn(n int) int {
	if len(p.Indexes) == 0 {
		return 0
	}
	i := p.Indexes[p.pos]
	if p.pos < len(p.Indexes)-1 {
		p.pos++
	}
	return i % n
}

// RecordingPresenter records every call made by a session
type RecordingPresenter struct {
	mu     sync.Mutex
	Calls  []string
	Fronts []domain.WordPair
	Backs  []domain.WordPair
	Warns  []error
}

func (p *RecordingPresenter) ShowFront(pair domain.WordPair) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "front:"+pair.Source)
	p.Fronts = append(p.Fronts, pair)
}

func (p *RecordingPresenter) ShowBack(pair domain.WordPair) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "back:"+pair.Target)
	p.Backs = append(p.Backs, pair)
}

func (p *RecordingPresenter) ShowComplete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "complete")
}

func (p *RecordingPresenter) Warn(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, "warn")
	p.Warns = append(p.Warns, err)
}

// Snapshot returns a copy of the recorded calls
func (p *RecordingPresenter) Snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Calls))
	copy(out, p.Calls)
	return out
}

package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"finassist/internal/profile"
	"finassist/internal/quote"
)

// ErrSessionNotFound is returned by Send when no session was started for
// the given identity. Callers are expected to start a session and retry.
var ErrSessionNotFound = errors.New("chat session not found")

// Completer is the completion oracle boundary. The eino openai chat model
// satisfies it directly.
type Completer interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Recorder logs finished turns. The history store satisfies it; a nil
// recorder disables logging.
type Recorder interface {
	AppendTurn(ctx context.Context, identity, role, content string) error
}

// Session holds one running conversation: the instruction fixed at start
// plus the accumulated turn history. History grows for the process
// lifetime; no truncation policy is applied.
type Session struct {
	ID      string
	history []*schema.Message
}

// Store keeps sessions keyed by identity. It is constructed at application
// start and passed to the Manager; there is no package-level state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, if any.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Put stores sess under its ID, replacing any previous session.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Clear drops every session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Session)
}

// Manager runs conversations: it starts sessions from user profiles and
// pipes each turn through the model, the extractor and the enricher.
type Manager struct {
	completer Completer
	source    quote.Source
	store     *Store
	recorder  Recorder
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRecorder makes the manager log finished turns. Recording is best
// effort and never fails a turn.
func WithRecorder(r Recorder) ManagerOption {
	return func(m *Manager) {
		m.recorder = r
	}
}

// NewManager creates a conversation manager.
func NewManager(completer Completer, source quote.Source, store *Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		completer: completer,
		source:    source,
		store:     store,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start opens a conversation for the profile's identity, seeded with a
// system instruction derived from the profile. An existing session for the
// same identity is overwritten. When initial is non-empty, it is sent as
// the first turn and its responses are returned.
func (m *Manager) Start(ctx context.Context, p profile.UserProfile, initial string) (string, []Response, error) {
	id := p.Identity()
	if id == "" {
		return "", nil, errors.New("profile has no full name")
	}

	m.store.Put(&Session{
		ID:      id,
		history: []*schema.Message{schema.SystemMessage(p.SystemInstruction())},
	})

	if initial == "" {
		return id, nil, nil
	}
	responses, err := m.Send(ctx, id, initial)
	if err != nil {
		return id, nil, err
	}
	return id, responses, nil
}

// Send submits one user turn to the session's model conversation and
// returns the extracted, enriched responses. The turn is appended to the
// session history only when the model call succeeds.
func (m *Manager) Send(ctx context.Context, id, text string) ([]Response, error) {
	sess, ok := m.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	input := append(append([]*schema.Message{}, sess.history...), schema.UserMessage(text))
	reply, err := m.completer.Generate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("chat turn for %s: %w", id, err)
	}

	sess.history = append(input, reply)

	responses := Enrich(ctx, m.source, Extract(reply.Content))

	m.record(ctx, id, text, reply.Content)

	return responses, nil
}

func (m *Manager) record(ctx context.Context, id, userText, modelText string) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.AppendTurn(ctx, id, "user", userText); err != nil {
		log.Printf("record user turn for %s: %v", id, err)
		return
	}
	if err := m.recorder.AppendTurn(ctx, id, "assistant", modelText); err != nil {
		log.Printf("record assistant turn for %s: %v", id, err)
	}
}

package store

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMessageNotFound = errors.New("message not found")
)

// MemoryStore is the single owner of all session and message state. Callers
// only ever receive copies; the maps and slices behind the mutex are never
// exposed.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	messages map[string][]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		messages: make(map[string][]Message),
	}
}

// CreateSession allocates a fresh session with the default title and an empty
// message list. The session and its message list are created together.
func (s *MemoryStore) CreateSession(now time.Time) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        NewID("session"),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sess.ID] = sess
	s.messages[sess.ID] = []Message{}
	return *sess
}

func (s *MemoryStore) GetSession(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *sess, nil
}

// ListSessions returns all sessions sorted by updatedAt descending. Equal
// timestamps are ordered by id so the result is stable across calls.
func (s *MemoryStore) ListSessions() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		list = append(list, *sess)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].UpdatedAt.After(list[j].UpdatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// GetMessages returns the session's messages in append order. An existing
// session with no turns yields an empty, non-nil slice.
func (s *MemoryStore) GetMessages(sessionID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}
	msgs := s.messages[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// AppendMessage adds a message to the end of the session's list. It does not
// advance updatedAt or set the title; the caller decides when those change.
func (s *MemoryStore) AppendMessage(sessionID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	s.messages[sessionID] = append(s.messages[sessionID], msg)
	return nil
}

// TouchSession advances updatedAt and, when title is non-nil, replaces the
// session title.
func (s *MemoryStore) TouchSession(sessionID string, title *string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if title != nil {
		sess.Title = *title
	}
	sess.UpdatedAt = updatedAt
	return nil
}

// SetFeedback finds the message by id across all sessions and records the
// feedback value. Repeated calls overwrite. Only assistant messages accept
// feedback; a user message id behaves like a miss.
func (s *MemoryStore) SetFeedback(messageID string, value Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, msgs := range s.messages {
		for i := range msgs {
			if msgs[i].ID != messageID {
				continue
			}
			if msgs[i].Role != RoleAssistant {
				return ErrMessageNotFound
			}
			s.messages[sessionID][i].Feedback = value
			return nil
		}
	}
	return ErrMessageNotFound
}

// DeleteSession removes the session and its message list together.
func (s *MemoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	delete(s.messages, id)
	return nil
}

// Stats reports the current session count and the total message count across
// all sessions, computed live.
func (s *MemoryStore) Stats() (sessions int, messages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, msgs := range s.messages {
		messages += len(msgs)
	}
	return len(s.sessions), messages
}

// SeedSamples inserts a few titled sessions with empty histories so a fresh
// deployment has something to show in the session list. Returns the number of
// sessions added.
func (s *MemoryStore) SeedSamples(now time.Time) int {
	samples := []struct {
		title string
		age   time.Duration
	}{
		{"Programming Languages Overview", 24 * time.Hour},
		{"Web Development Frameworks", 48 * time.Hour},
		{"Database Comparison", 72 * time.Hour},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sample := range samples {
		sess := &Session{
			ID:        NewID("session"),
			Title:     sample.title,
			CreatedAt: now.Add(-sample.age),
			UpdatedAt: now.Add(-sample.age),
		}
		s.sessions[sess.ID] = sess
		s.messages[sess.ID] = []Message{}
	}
	return len(samples)
}

package core

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tabletalk-ai/tabletalk/internal/classifier"
	"github.com/tabletalk-ai/tabletalk/internal/store"
)

var (
	ErrEmptyMessage    = errors.New("message is required")
	ErrInvalidFeedback = errors.New("invalid feedback value")
)

// ConversationStore is the owned aggregate of all session and message state.
type ConversationStore interface {
	CreateSession(now time.Time) store.Session
	GetSession(id string) (store.Session, error)
	ListSessions() []store.Session
	GetMessages(sessionID string) ([]store.Message, error)
	AppendMessage(sessionID string, msg store.Message) error
	TouchSession(sessionID string, title *string, updatedAt time.Time) error
	SetFeedback(messageID string, value store.Feedback) error
	DeleteSession(id string) error
	Stats() (sessions int, messages int)
}

// ChatService orchestrates session and message operations against the store
// and the classifier. Mutating operations are serialized through a single
// mutex so that an Ask's user/assistant append pair is never interleaved with
// another writer, and a delete either fully precedes or fully follows any
// concurrent Ask or feedback call.
type ChatService struct {
	mu     sync.Mutex
	store  ConversationStore
	clf    classifier.Classifier
	logger *zap.Logger
	now    func() time.Time
}

func NewChatService(st ConversationStore, clf classifier.Classifier, logger *zap.Logger) *ChatService {
	return &ChatService{
		store:  st,
		clf:    clf,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ChatService) NewSession() store.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.store.CreateSession(s.now())
	s.logger.Info("session created", zap.String("session_id", sess.ID))
	return sess
}

func (s *ChatService) ListSessions() []store.Session {
	return s.store.ListSessions()
}

func (s *ChatService) GetSession(id string) (store.Session, error) {
	return s.store.GetSession(id)
}

func (s *ChatService) GetMessages(sessionID string) ([]store.Message, error) {
	return s.store.GetMessages(sessionID)
}

// Ask appends the user's message to the session, classifies it, and appends
// the resulting assistant message. A missing or unknown session id is not an
// error: the service creates a fresh session on demand and returns its id,
// so clients can start a conversation with a bare question.
func (s *ChatService) Ask(sessionID, message string) (string, store.Message, error) {
	if message == "" {
		return "", store.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	sess, err := s.store.GetSession(sessionID)
	if err != nil {
		sess = s.store.CreateSession(now)
		s.logger.Info("session created on demand", zap.String("session_id", sess.ID))
	}

	userMsg := store.Message{
		ID:        store.NewID("msg"),
		Role:      store.RoleUser,
		Content:   message,
		Timestamp: now,
		Feedback:  store.FeedbackNone,
	}
	if err := s.store.AppendMessage(sess.ID, userMsg); err != nil {
		return "", store.Message{}, fmt.Errorf("failed to append user message: %w", err)
	}

	resp := s.clf.Classify(message)
	assistantMsg := store.Message{
		ID:        store.NewID("msg"),
		Role:      store.RoleAssistant,
		Content:   resp.Content,
		Table:     resp.Table,
		Timestamp: now,
		Feedback:  store.FeedbackNone,
	}
	if err := s.store.AppendMessage(sess.ID, assistantMsg); err != nil {
		return "", store.Message{}, fmt.Errorf("failed to append assistant message: %w", err)
	}

	// The first user message names the session; later asks only bump
	// updatedAt.
	var title *string
	if sess.Title == store.DefaultTitle {
		t := SummarizeTitle(message)
		title = &t
	}
	if err := s.store.TouchSession(sess.ID, title, now); err != nil {
		return "", store.Message{}, fmt.Errorf("failed to touch session: %w", err)
	}

	return sess.ID, assistantMsg, nil
}

// SetFeedback records a like/dislike on an assistant message. Repeated calls
// overwrite the previous value.
func (s *ChatService) SetFeedback(messageID, value string) (store.Feedback, error) {
	fb := store.Feedback(value)
	if fb != store.FeedbackLike && fb != store.FeedbackDislike {
		return "", ErrInvalidFeedback
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SetFeedback(messageID, fb); err != nil {
		return "", err
	}
	s.logger.Info("feedback recorded",
		zap.String("message_id", messageID),
		zap.String("feedback", value))
	return fb, nil
}

func (s *ChatService) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteSession(id); err != nil {
		return err
	}
	s.logger.Info("session deleted", zap.String("session_id", id))
	return nil
}

type HealthStatus struct {
	Timestamp     time.Time
	Sessions      int
	TotalMessages int
}

// Health reports live counters straight from the store.
func (s *ChatService) Health() HealthStatus {
	sessions, messages := s.store.Stats()
	return HealthStatus{
		Timestamp:     s.now(),
		Sessions:      sessions,
		TotalMessages: messages,
	}
}

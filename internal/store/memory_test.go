package store

import (
	"errors"
	"testing"
	"time"
)

func TestCreateAndGetSession(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	sess := s.CreateSession(now)
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}
	if sess.Title != DefaultTitle {
		t.Fatalf("expected title %q, got %q", DefaultTitle, sess.Title)
	}
	if !sess.CreatedAt.Equal(now) || !sess.UpdatedAt.Equal(now) {
		t.Fatalf("expected createdAt and updatedAt = %v, got %v / %v", now, sess.CreatedAt, sess.UpdatedAt)
	}

	got, err := s.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != sess.ID {
		t.Fatalf("expected id %s, got %s", sess.ID, got.ID)
	}

	if _, err := s.GetSession("session-nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCreateSessionHasEmptyMessageList(t *testing.T) {
	s := NewMemoryStore()
	sess := s.CreateSession(time.Now())

	msgs, err := s.GetMessages(sess.ID)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if msgs == nil {
		t.Fatal("expected empty slice for a fresh session, got nil")
	}
	if len(msgs) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(msgs))
	}
}

func TestListSessionsOrderedByUpdatedAt(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	oldest := s.CreateSession(base)
	middle := s.CreateSession(base.Add(time.Hour))
	newest := s.CreateSession(base.Add(2 * time.Hour))

	list := s.ListSessions()
	if len(list) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(list))
	}
	if list[0].ID != newest.ID || list[1].ID != middle.ID || list[2].ID != oldest.ID {
		t.Fatalf("unexpected order: %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}

	// Touching the oldest session moves it to the front.
	if err := s.TouchSession(oldest.ID, nil, base.Add(3*time.Hour)); err != nil {
		t.Fatalf("TouchSession failed: %v", err)
	}
	list = s.ListSessions()
	if list[0].ID != oldest.ID {
		t.Fatalf("expected touched session first, got %s", list[0].ID)
	}
}

func TestListSessionsStableTieBreak(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.CreateSession(now)
	}

	first := s.ListSessions()
	for i := 0; i < 10; i++ {
		again := s.ListSessions()
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("order changed between calls at index %d", j)
			}
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].ID > first[i].ID {
			t.Fatalf("equal timestamps not ordered by id: %s before %s", first[i-1].ID, first[i].ID)
		}
	}
}

func TestAppendMessage(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	sess := s.CreateSession(now)

	msg := Message{ID: NewID("msg"), Role: RoleUser, Content: "hello", Timestamp: now, Feedback: FeedbackNone}
	if err := s.AppendMessage(sess.ID, msg); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	msgs, err := s.GetMessages(sess.ID)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != msg.ID {
		t.Fatalf("expected appended message, got %+v", msgs)
	}

	// Appending does not bump updatedAt; that is the caller's call.
	got, _ := s.GetSession(sess.ID)
	if !got.UpdatedAt.Equal(sess.UpdatedAt) {
		t.Fatalf("AppendMessage changed updatedAt: %v -> %v", sess.UpdatedAt, got.UpdatedAt)
	}

	if err := s.AppendMessage("session-nope", msg); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTouchSession(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	sess := s.CreateSession(now)

	later := now.Add(time.Minute)
	if err := s.TouchSession(sess.ID, nil, later); err != nil {
		t.Fatalf("TouchSession failed: %v", err)
	}
	got, _ := s.GetSession(sess.ID)
	if got.Title != DefaultTitle {
		t.Fatalf("nil title should keep existing title, got %q", got.Title)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("expected updatedAt %v, got %v", later, got.UpdatedAt)
	}

	title := "What is Go good for"
	if err := s.TouchSession(sess.ID, &title, later.Add(time.Minute)); err != nil {
		t.Fatalf("TouchSession failed: %v", err)
	}
	got, _ = s.GetSession(sess.ID)
	if got.Title != title {
		t.Fatalf("expected title %q, got %q", title, got.Title)
	}

	if err := s.TouchSession("session-nope", nil, later); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSetFeedback(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	sess := s.CreateSession(now)

	userMsg := Message{ID: NewID("msg"), Role: RoleUser, Content: "hi", Timestamp: now, Feedback: FeedbackNone}
	botMsg := Message{ID: NewID("msg"), Role: RoleAssistant, Content: "hello", Timestamp: now, Feedback: FeedbackNone}
	s.AppendMessage(sess.ID, userMsg)
	s.AppendMessage(sess.ID, botMsg)

	if err := s.SetFeedback(botMsg.ID, FeedbackLike); err != nil {
		t.Fatalf("SetFeedback failed: %v", err)
	}
	msgs, _ := s.GetMessages(sess.ID)
	if msgs[1].Feedback != FeedbackLike {
		t.Fatalf("expected like, got %s", msgs[1].Feedback)
	}

	// Overwrite is allowed.
	if err := s.SetFeedback(botMsg.ID, FeedbackDislike); err != nil {
		t.Fatalf("SetFeedback overwrite failed: %v", err)
	}
	msgs, _ = s.GetMessages(sess.ID)
	if msgs[1].Feedback != FeedbackDislike {
		t.Fatalf("expected dislike, got %s", msgs[1].Feedback)
	}

	// User messages are not valid feedback targets.
	if err := s.SetFeedback(userMsg.ID, FeedbackLike); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound for user message, got %v", err)
	}
	if err := s.SetFeedback("msg-nope", FeedbackLike); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestSetFeedbackAcrossSessions(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()

	// Bury the target message in the second of several sessions.
	s.CreateSession(now)
	sess := s.CreateSession(now)
	s.CreateSession(now)

	botMsg := Message{ID: NewID("msg"), Role: RoleAssistant, Content: "hello", Timestamp: now, Feedback: FeedbackNone}
	s.AppendMessage(sess.ID, botMsg)

	if err := s.SetFeedback(botMsg.ID, FeedbackLike); err != nil {
		t.Fatalf("SetFeedback failed: %v", err)
	}
	msgs, _ := s.GetMessages(sess.ID)
	if msgs[0].Feedback != FeedbackLike {
		t.Fatalf("expected like, got %s", msgs[0].Feedback)
	}
}

func TestDeleteSession(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	sess := s.CreateSession(now)
	s.AppendMessage(sess.ID, Message{ID: NewID("msg"), Role: RoleUser, Content: "hi", Timestamp: now})

	if err := s.DeleteSession(sess.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := s.GetSession(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if _, err := s.GetMessages(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for messages after delete, got %v", err)
	}

	if err := s.DeleteSession(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on repeat delete, got %v", err)
	}

	sessions, messages := s.Stats()
	if sessions != 0 || messages != 0 {
		t.Fatalf("expected empty store after delete, got %d sessions, %d messages", sessions, messages)
	}
}

func TestStats(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()

	a := s.CreateSession(now)
	b := s.CreateSession(now)
	s.AppendMessage(a.ID, Message{ID: NewID("msg"), Role: RoleUser, Content: "1", Timestamp: now})
	s.AppendMessage(a.ID, Message{ID: NewID("msg"), Role: RoleAssistant, Content: "2", Timestamp: now})
	s.AppendMessage(b.ID, Message{ID: NewID("msg"), Role: RoleUser, Content: "3", Timestamp: now})

	sessions, messages := s.Stats()
	if sessions != 2 {
		t.Fatalf("expected 2 sessions, got %d", sessions)
	}
	if messages != 3 {
		t.Fatalf("expected 3 messages, got %d", messages)
	}
}

func TestSeedSamples(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	n := s.SeedSamples(now)
	if n != 3 {
		t.Fatalf("expected 3 seeded sessions, got %d", n)
	}

	list := s.ListSessions()
	if len(list) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(list))
	}
	for _, sess := range list {
		if sess.Title == DefaultTitle {
			t.Fatalf("seeded session %s has the placeholder title", sess.ID)
		}
		if !sess.UpdatedAt.Before(now) {
			t.Fatalf("seeded session %s should be dated in the past", sess.ID)
		}
		msgs, err := s.GetMessages(sess.ID)
		if err != nil {
			t.Fatalf("GetMessages failed for seeded session: %v", err)
		}
		if len(msgs) != 0 {
			t.Fatalf("seeded session should have no messages, got %d", len(msgs))
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID("msg")
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}

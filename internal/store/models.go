package store

import "time"

// DefaultTitle is the placeholder title a session carries until its first
// user message arrives.
const DefaultTitle = "New Chat"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Feedback string

const (
	FeedbackNone    Feedback = "none"
	FeedbackLike    Feedback = "like"
	FeedbackDislike Feedback = "dislike"
)

type Session struct {
	ID        string    `json:"id"` // "session-" + UUID
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Table is a structured response payload with named columns. Every row has
// exactly one cell per header.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type Message struct {
	ID        string    `json:"id"` // "msg-" + UUID
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Table     *Table    `json:"table,omitempty"` // only on assistant messages
	Timestamp time.Time `json:"timestamp"`
	Feedback  Feedback  `json:"feedback"`
}

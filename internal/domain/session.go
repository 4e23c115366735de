package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role tags a conversation turn with its author
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is a single entry in a conversation history
type Turn struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTurn creates a timestamped conversation turn
func NewTurn(role Role, text string) Turn {
	return Turn{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// Session holds the ephemeral conversation log for one user.
// Sessions live for the process lifetime and are never evicted.
type Session struct {
	UserID    string    `json:"user_id"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
}

// AnonymousUserID is the sentinel used when the caller supplies no user ID.
const AnonymousUserID = "anonymous"

package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"techmart-assistant/internal/domain"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository defines the interface for conversation session access.
// Sessions are ephemeral: created lazily on first use, never evicted.
type SessionRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Session, error)
	Append(ctx context.Context, userID string, turn domain.Turn) error
	History(ctx context.Context, userID string) ([]domain.Turn, error)
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemorySessionRepository creates an in-memory SessionRepository guarded
// by a mutex. Concurrent appends for the same user interleave in lock
// acquisition order; each append is atomic.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *memorySessionRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getOrCreateLocked(userID), nil
}

func (r *memorySessionRepository) Append(ctx context.Context, userID string, turn domain.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.getOrCreateLocked(userID)
	session.Turns = append(session.Turns, turn)
	return nil
}

func (r *memorySessionRepository) History(ctx context.Context, userID string) ([]domain.Turn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[userID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	turns := make([]domain.Turn, len(session.Turns))
	copy(turns, session.Turns)
	return turns, nil
}

func (r *memorySessionRepository) getOrCreateLocked(userID string) *domain.Session {
	if session, exists := r.sessions[userID]; exists {
		return session
	}

	session := &domain.Session{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	r.sessions[userID] = session
	return session
}

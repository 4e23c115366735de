package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"techmart-assistant/internal/domain"
)

type redisSessionRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSessionRepository creates a SessionRepository that stores each
// conversation as a Redis list of JSON-encoded turns. Appends are atomic
// via RPUSH so concurrent writers for the same user interleave safely.
func NewRedisSessionRepository(client *redis.Client) SessionRepository {
	return &redisSessionRepository{
		client:    client,
		keyPrefix: "session",
	}
}

func (r *redisSessionRepository) turnsKey(userID string) string {
	return fmt.Sprintf("%s:%s:turns", r.keyPrefix, userID)
}

func (r *redisSessionRepository) metaKey(userID string) string {
	return fmt.Sprintf("%s:%s:created_at", r.keyPrefix, userID)
}

func (r *redisSessionRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Session, error) {
	created, err := r.client.SetNX(ctx, r.metaKey(userID), time.Now().UTC().Format(time.RFC3339Nano), 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	session := &domain.Session{UserID: userID}

	createdAt, err := r.client.Get(ctx, r.metaKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session metadata: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		session.CreatedAt = t
	}

	if !created {
		turns, err := r.History(ctx, userID)
		if err != nil && err != ErrSessionNotFound {
			return nil, err
		}
		session.Turns = turns
	}

	return session, nil
}

func (r *redisSessionRepository) Append(ctx context.Context, userID string, turn domain.Turn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode turn: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.SetNX(ctx, r.metaKey(userID), time.Now().UTC().Format(time.RFC3339Nano), 0)
	pipe.RPush(ctx, r.turnsKey(userID), payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

func (r *redisSessionRepository) History(ctx context.Context, userID string) ([]domain.Turn, error) {
	raw, err := r.client.LRange(ctx, r.turnsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	exists, err := r.client.Exists(ctx, r.metaKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if exists == 0 && len(raw) == 0 {
		return nil, ErrSessionNotFound
	}

	turns := make([]domain.Turn, 0, len(raw))
	for _, item := range raw {
		var turn domain.Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode turn: %w", err)
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

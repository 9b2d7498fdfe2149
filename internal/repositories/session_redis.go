package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

const maxUpdateRetries = 5

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SessionRedisRepository keeps session states in Redis as JSON with a TTL.
type SessionRedisRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSessionRedisRepository creates a Redis-backed session store.
func NewSessionRedisRepository(client *redis.Client, expiration time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, exp: expiration}
}

func sessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

// Create stores a new session.
func (r *SessionRedisRepository) Create(ctx context.Context, id uuid.UUID, state models.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, sessionKey(id), data, r.exp).Err(); err != nil {
		logger.Log.Errorw("failed to create session", "session_id", id, "error", err)
		return err
	}
	return nil
}

// Get returns the state of a live session.
func (r *SessionRedisRepository) Get(ctx context.Context, id uuid.UUID) (models.State, error) {
	return r.get(ctx, r.client, id)
}

// Update replaces the state with fn(current) inside a WATCH/MULTI
// transaction, retrying when another writer touched the key first.
func (r *SessionRedisRepository) Update(ctx context.Context, id uuid.UUID, fn func(models.State) models.State) (models.State, error) {
	key := sessionKey(id)
	var next models.State

	txf := func(tx *redis.Tx) error {
		current, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		next = fn(current)
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return next, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if !errors.Is(err, models.ErrSessionNotFound) {
			logger.Log.Errorw("failed to update session", "session_id", id, "error", err)
		}
		return models.State{}, err
	}
	return models.State{}, fmt.Errorf("update session %s: too much contention", id)
}

func (r *SessionRedisRepository) get(ctx context.Context, c stringGetter, id uuid.UUID) (models.State, error) {
	val, err := c.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.State{}, models.ErrSessionNotFound
		}
		return models.State{}, err
	}

	var state models.State
	if err := json.Unmarshal(val, &state); err != nil {
		return models.State{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return state, nil
}

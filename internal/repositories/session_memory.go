package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/ada-checkout/internal/models"
)

type memorySession struct {
	state     models.State
	expiresAt time.Time
}

// SessionMemoryRepository keeps session states in process memory.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*memorySession
	exp      time.Duration
	now      func() time.Time
}

// NewSessionMemoryRepository creates a store whose sessions expire after
// exp of inactivity.
func NewSessionMemoryRepository(exp time.Duration) *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[uuid.UUID]*memorySession),
		exp:      exp,
		now:      time.Now,
	}
}

// Create stores a new session.
func (r *SessionMemoryRepository) Create(ctx context.Context, id uuid.UUID, state models.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	r.sessions[id] = &memorySession{state: state, expiresAt: r.now().Add(r.exp)}
	return nil
}

// Get returns the state of a live session.
func (r *SessionMemoryRepository) Get(ctx context.Context, id uuid.UUID) (models.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.live(id)
	if !ok {
		return models.State{}, models.ErrSessionNotFound
	}
	return s.state, nil
}

// Update replaces the state with fn(current) atomically and returns it.
func (r *SessionMemoryRepository) Update(ctx context.Context, id uuid.UUID, fn func(models.State) models.State) (models.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.live(id)
	if !ok {
		return models.State{}, models.ErrSessionNotFound
	}
	s.state = fn(s.state)
	s.expiresAt = r.now().Add(r.exp)
	return s.state, nil
}

func (r *SessionMemoryRepository) live(id uuid.UUID) (*memorySession, bool) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if !r.now().Before(s.expiresAt) {
		delete(r.sessions, id)
		return nil, false
	}
	return s, true
}

// sweep drops expired sessions. Caller holds mu.
func (r *SessionMemoryRepository) sweep() {
	now := r.now()
	for id, s := range r.sessions {
		if !now.Before(s.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

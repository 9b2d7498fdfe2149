package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/ada-checkout/internal/models"
)

func TestSessionMemoryRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository(time.Minute)
	id := uuid.New()

	_, err := repo.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	assert.NoError(t, repo.Create(ctx, id, models.State{}))

	got, err := repo.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, models.State{}, got)

	next, err := repo.Update(ctx, id, func(s models.State) models.State {
		s.BillAmount = "10"
		return s
	})
	assert.NoError(t, err)
	assert.Equal(t, "10", next.BillAmount)

	got, err = repo.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "10", got.BillAmount)
}

func TestSessionMemoryRepository_UpdateUnknown(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute)
	called := false

	_, err := repo.Update(context.Background(), uuid.New(), func(s models.State) models.State {
		called = true
		return s
	})
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.False(t, called)
}

func TestSessionMemoryRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository(time.Minute)
	now := time.Now()
	repo.now = func() time.Time { return now }

	id := uuid.New()
	assert.NoError(t, repo.Create(ctx, id, models.State{}))

	now = now.Add(30 * time.Second)
	_, err := repo.Update(ctx, id, func(s models.State) models.State { return s })
	assert.NoError(t, err, "update refreshes expiry")

	now = now.Add(45 * time.Second)
	_, err = repo.Get(ctx, id)
	assert.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSessionMemoryRepository_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionMemoryRepository(time.Minute)
	id := uuid.New()
	assert.NoError(t, repo.Create(ctx, id, models.State{}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, id, func(s models.State) models.State {
				s.BillAmount += "1"
				return s
			})
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, got.BillAmount, 100)
}

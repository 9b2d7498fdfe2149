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

func TestSessionRedisRepository(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	repo := NewSessionRedisRepository(rdb, 2*time.Second)

	t.Run("create and get", func(t *testing.T) {
		id := uuid.New()
		rate := 0.45
		state := models.State{ConversionRate: &rate, BillAmount: "10"}

		assert.NoError(t, repo.Create(ctx, id, state))
		got, err := repo.Get(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, state, got)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, models.ErrSessionNotFound)

		_, err = repo.Update(ctx, uuid.New(), func(s models.State) models.State { return s })
		assert.ErrorIs(t, err, models.ErrSessionNotFound)
	})

	t.Run("concurrent updates are serialised", func(t *testing.T) {
		id := uuid.New()
		assert.NoError(t, repo.Create(ctx, id, models.State{}))

		var wg sync.WaitGroup
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Update(ctx, id, func(s models.State) models.State {
					s.BillAmount += "1"
					return s
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.Get(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "111", got.BillAmount)
	})

	t.Run("session expires", func(t *testing.T) {
		id := uuid.New()
		assert.NoError(t, repo.Create(ctx, id, models.State{}))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, models.ErrSessionNotFound)
	})
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/ada-checkout/internal/logger"
)

const rateKey = "exchange_rate:ADA:USD"

// ErrRateNotCached is returned on a cache miss.
var ErrRateNotCached = errors.New("exchange rate not found in cache")

// ExchangeRateCacheRepository caches the ADA/USD rate in Redis.
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewExchangeRateCacheRepository creates a cache whose entries expire after expiration.
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{client: client, exp: expiration}
}

// GetADAPrice returns the cached rate.
func (r *ExchangeRateCacheRepository) GetADAPrice(ctx context.Context) (float64, error) {
	val, err := r.client.Get(ctx, rateKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrRateNotCached
		}
		logger.Log.Errorw("failed to read cached rate", "key", rateKey, "error", err)
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("cached rate %q: %w", val, err)
	}
	logger.Log.Debugw("rate cache hit", "key", rateKey, "rate", rate)
	return rate, nil
}

// SetADAPrice stores the rate with the configured expiration.
func (r *ExchangeRateCacheRepository) SetADAPrice(ctx context.Context, rate float64) error {
	err := r.client.Set(ctx, rateKey, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to cache rate", "key", rateKey, "rate", rate, "error", err)
	}
	return err
}

package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "lock:"

// Deletes the key only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a lease lock shared by every instance that talks to the
// same Redis. The lease expires after ttl if the holder dies.
type RedisLocker struct {
	rdb        *redis.Client
	ttl        time.Duration
	retryAfter time.Duration
	logger     *zap.Logger
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{
		rdb:        rdb,
		ttl:        ttl,
		retryAfter: 50 * time.Millisecond,
		logger:     logger,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (port.UnlockFn, error) {
	token := uuid.NewString()
	redisKey := keyPrefix + key

	for {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis setnx %s: %w", redisKey, err)
		}
		if ok {
			break
		}

		r := time.NewTimer(l.retryAfter)
		select {
		case <-r.C:
		case <-ctx.Done():
			r.Stop()
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrLockNotAcquired, key, ctx.Err())
		}
	}

	return func() {
		// The caller's context may already be cancelled here.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := unlockScript.Run(ctx, l.rdb, []string{redisKey}, token).Err()
		if err != nil {
			l.logger.Error("release lock", zap.String("key", redisKey), zap.Error(err))
		}
	}, nil
}

package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

var ErrLockNotAcquired = errors.New("lock not acquired")

const (
	lockKeyPrefix = "gymdesk:lock:"

	DefaultLockTTL        = 10 * time.Second
	DefaultLockRetries    = 20
	DefaultLockRetryDelay = 50 * time.Millisecond
)

// deletes the key only if it still holds our token
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// RedisLocker serializes work per key across service instances.
type RedisLocker struct {
	redisClient *redis.Client
	ttl         time.Duration
	retries     int
	retryDelay  time.Duration

	// ability to inject the token generator (for unit testing)
	newToken func() (string, error)
}

func NewRedisLocker(redisClient *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		redisClient: redisClient,
		ttl:         ttl,
		retries:     DefaultLockRetries,
		retryDelay:  DefaultLockRetryDelay,
		newToken: func() (string, error) {
			return pkg.GenerateRandomString(16)
		},
	}
}

// Lock blocks until the key is acquired, the retries run out or ctx is done.
// The returned unlock func must be called to release the key early; otherwise it expires after ttl.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	token, err := l.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate lock token: %w", err)
	}

	lockKey := lockKeyPrefix + key
	for attempt := 0; ; attempt++ {
		acquired, err := l.redisClient.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("set lock [%s]: %w", lockKey, err)
		}
		if acquired {
			return func() {
				l.release(lockKey, token)
			}, nil
		}

		if attempt >= l.retries {
			return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, lockKey)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *RedisLocker) release(lockKey, token string) {
	// release even if the caller's context is already cancelled
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.redisClient.Eval(ctx, releaseScript, []string{lockKey}, token).Err(); err != nil {
		log.Errorf("release lock [%s]: %s", lockKey, err)
	}
}

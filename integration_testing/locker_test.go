//go:build integration_test

package integration_testing

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/progression"

	"github.com/go-redis/redis/v8"
)

func (s *IntegrationTestSuite) TestRedisLocker_SerializesSameKey() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", s.redisPort),
	})
	defer rdb.Close()

	locker := progression.NewRedisLocker(rdb, progression.DefaultLockTTL)

	var (
		mu      sync.Mutex
		holders int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "suggestion:integration:bench_press")
			if !s.NoError(err) {
				return
			}

			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	s.Equal(1, maxSeen)
}

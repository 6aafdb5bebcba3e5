package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Hit(t *testing.T) {
	addr := os.Getenv("GOCAB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("GOCAB_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	s := NewRateLimitStore(client)
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, rateLimitPrefix+key) })

	for want := int64(1); want <= 3; want++ {
		n, ttl, err := s.Hit(ctx, key, 2*time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, n)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, 2*time.Second)
	}

	time.Sleep(2100 * time.Millisecond)
	n, _, err := s.Hit(ctx, key, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "a new window starts after expiry")
}

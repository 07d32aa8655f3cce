package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skip redis test: cannot start container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestLoginLimiterBlocksAfterMaxAttempts(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	limiter := NewLoginLimiter(client, 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// 不同来源互不影响
	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := client.TTL(ctx, "login:10.0.0.1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestLoginLimiterRepairsKeyWithoutTTL(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	limiter := NewLoginLimiter(client, 3, time.Minute)

	// 计数已超过上限但没有过期时间
	require.NoError(t, client.Set(ctx, "login:10.0.0.9", 5, 0).Err())

	ok, err := limiter.Allow(ctx, "10.0.0.9")
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, "login:10.0.0.9").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	// 已有过期时间时不重置窗口
	require.NoError(t, client.Expire(ctx, "login:10.0.0.9", 10*time.Second).Err())
	_, err = limiter.Allow(ctx, "10.0.0.9")
	require.NoError(t, err)
	ttl, err = client.TTL(ctx, "login:10.0.0.9").Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, 10*time.Second)
}

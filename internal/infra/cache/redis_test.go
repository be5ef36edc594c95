//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"staybook/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDeduper(t *testing.T) (*miniredis.Miniredis, *WebhookDeduper) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig()
	cfg.Redis.WebhookKeyPrefix = "test:webhook:"
	cfg.Redis.WebhookDedupeTTL = time.Minute
	return mr, NewWebhookDeduper(client, cfg)
}

func TestWebhookDeduper_FirstDelivery(t *testing.T) {
	mr, d := setupDeduper(t)
	ctx := context.Background()

	first, err := d.FirstDelivery(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.FirstDelivery(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, again, "redelivery must be reported as seen")

	other, err := d.FirstDelivery(ctx, "evt_2")
	require.NoError(t, err)
	assert.True(t, other)

	assert.True(t, mr.Exists("test:webhook:evt_1"))
	assert.Equal(t, time.Minute, mr.TTL("test:webhook:evt_1"))
}

func TestWebhookDeduper_ForgetAllowsRetry(t *testing.T) {
	_, d := setupDeduper(t)
	ctx := context.Background()

	_, err := d.FirstDelivery(ctx, "evt_1")
	require.NoError(t, err)
	require.NoError(t, d.Forget(ctx, "evt_1"))

	first, err := d.FirstDelivery(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestWebhookDeduper_ClaimExpires(t *testing.T) {
	mr, d := setupDeduper(t)
	ctx := context.Background()

	_, err := d.FirstDelivery(ctx, "evt_1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	first, err := d.FirstDelivery(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestWebhookDeduper_RedisDown(t *testing.T) {
	mr, d := setupDeduper(t)
	mr.Close()

	_, err := d.FirstDelivery(context.Background(), "evt_1")
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.NewTestConfig()

	testCases := []struct {
		name string
		url  string
	}{
		{"url form", "redis://" + mr.Addr() + "/0"},
		{"host port form", mr.Addr()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg.Redis.URL = tc.url
			client, err := Connect(context.Background(), cfg)
			require.NoError(t, err)
			assert.NoError(t, client.Close())
		})
	}
}

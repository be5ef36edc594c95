package cache

import (
	"context"
	"strings"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect accepts either a redis:// URL or a bare host:port.
func Connect(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(cfg.Redis.URL, "redis://") || strings.HasPrefix(cfg.Redis.URL, "rediss://") {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, errs.Wrap(err, "parse redis url")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "ping redis")
	}
	return client, nil
}

// WebhookDeduper claims gateway event ids with SET NX so a redelivered event
// is skipped while the first delivery is still being handled or after it
// succeeded. Claims expire after the configured TTL.
type WebhookDeduper struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewWebhookDeduper(client *redis.Client, cfg config.Config) *WebhookDeduper {
	ttl := cfg.Redis.WebhookDedupeTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &WebhookDeduper{client: client, prefix: cfg.Redis.WebhookKeyPrefix, ttl: ttl}
}

func (d *WebhookDeduper) FirstDelivery(ctx context.Context, eventID string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(eventID), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "claim webhook event %s", eventID)
	}
	return ok, nil
}

// Forget releases a claim so the gateway's next retry is processed again.
func (d *WebhookDeduper) Forget(ctx context.Context, eventID string) error {
	if err := d.client.Del(ctx, d.key(eventID)).Err(); err != nil {
		return errs.Wrapf(err, "release webhook event %s", eventID)
	}
	return nil
}

func (d *WebhookDeduper) key(eventID string) string {
	return d.prefix + eventID
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const qrCacheTTL = 12 * time.Hour

// QRCache stores rendered QR data URIs keyed by location code. Codes are
// never removed from the registry, so a plain TTL is enough.
// Key format: qr:<location_code>
type QRCache struct {
	client *redis.Client
}

// NewQRCache creates a QRCache wrapping the given Redis client.
func NewQRCache(client *redis.Client) *QRCache {
	return &QRCache{client: client}
}

// Get returns the cached data URI for a code, or "" on a miss.
func (c *QRCache) Get(ctx context.Context, code string) (string, error) {
	val, err := c.client.Get(ctx, c.key(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("qr cache get: %w", err)
	}
	return val, nil
}

// Set stores the rendered data URI for a code (expires after qrCacheTTL).
func (c *QRCache) Set(ctx context.Context, code, dataURI string) error {
	return c.client.Set(ctx, c.key(code), dataURI, qrCacheTTL).Err()
}

func (c *QRCache) key(code string) string {
	return "qr:" + code
}

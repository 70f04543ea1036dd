package guard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBlockCache keeps currently blocked IPs in Redis with a TTL matching
// the block expiry, so the common "not blocked" case still hits Postgres and
// blocks written by other instances are honored there.
type RedisBlockCache struct {
	client *redis.Client
}

func NewRedisBlockCache(client *redis.Client) *RedisBlockCache {
	return &RedisBlockCache{client: client}
}

func (c *RedisBlockCache) Get(ctx context.Context, ip string) (time.Time, bool, error) {
	unix, err := c.client.Get(ctx, blockKey(ip)).Int64()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(unix, 0).UTC(), true, nil
}

func (c *RedisBlockCache) Set(ctx context.Context, ip string, blockedUntil time.Time) error {
	ttl := time.Until(blockedUntil)
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, blockKey(ip), blockedUntil.Unix(), ttl).Err()
}

func blockKey(ip string) string {
	return "ipblock:" + ip
}

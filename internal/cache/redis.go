package cache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Redis backs the response cache with a shared Redis instance so multiple
// hosts can reuse each other's work. Selected when REDIS_URL is set;
// callers fall back to Memory when the URL does not parse.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Redis{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, "truckrec:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *Redis) Set(ctx context.Context, key string, val []byte) {
	// best effort; a miss next time just recomputes
	_ = c.rdb.Set(ctx, "truckrec:"+key, val, c.ttl).Err()
}

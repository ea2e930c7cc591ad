package errx

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// WrapRedis classifies a failure on the Redis key holding the inventory cache.
// A missing key is a cache miss, a timeout is cache i/o, anything else is CodeRedis.
func WrapRedis(err error, key string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, redis.Nil):
		return CacheNotFound(err)
	case errors.Is(err, context.DeadlineExceeded):
		return CacheIO(err)
	default:
		return New(err, CodeRedis, fmt.Sprintf("%s (key %s)", RedisErrorMessage, key))
	}
}

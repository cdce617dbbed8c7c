package contracts

import (
	"context"
	"time"
)

// RedisRepository abstracts the cache used for sessions and the
// payment-reference mapping. Get returns an empty string on a miss.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

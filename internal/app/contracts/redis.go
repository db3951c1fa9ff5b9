package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON encoded values. Get returns "" for a missing key.
type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete removes key only while it still holds value.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error)
	// CompareAndExpire resets the TTL of key only while it still holds value.
	CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}

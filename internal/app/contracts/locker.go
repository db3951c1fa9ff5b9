package contracts

import (
	"context"
	"time"
)

// Lease is a held distributed lock. Token proves ownership on release and extend.
type Lease struct {
	Key   string
	Token string
	TTL   time.Duration
}

type LockerService interface {
	// Acquire returns a nil lease and no error when key is held by someone else.
	Acquire(ctx context.Context, key string, ttl time.Duration) (*Lease, error)
	Release(ctx context.Context, lease *Lease) error
	// Extend pushes expiry out by lease.TTL and fails once the lease is lost.
	Extend(ctx context.Context, lease *Lease) error
}

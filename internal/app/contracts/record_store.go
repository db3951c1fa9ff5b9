package contracts

import "context"

// RecordStore keeps each named collection as one JSON text array. dst and
// records are pointers to slices.
type RecordStore interface {
	// LoadCollection fills dst, leaving it empty when the collection is
	// absent or cannot be decoded.
	LoadCollection(ctx context.Context, name string, dst interface{}) error
	SaveCollection(ctx context.Context, name string, records interface{}) error
	// UpdateCollection loads name into dst, runs mutate and saves dst back.
	// Nothing is written when mutate fails. Concurrent updates of the same
	// collection never interleave.
	UpdateCollection(ctx context.Context, name string, dst interface{}, mutate func() error) error
}

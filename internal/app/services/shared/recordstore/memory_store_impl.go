package recordstore

import (
	"context"
	"hospital-booking-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

// MemoryRecordStore keeps collections in process. It serializes every
// update with one mutex, so mutate callbacks must not call back into the
// store.
type MemoryRecordStore struct {
	mu          sync.Mutex
	collections map[string][]byte
	Log         *zap.Logger
}

func NewMemoryRecordStore(logger *zap.Logger) *MemoryRecordStore {
	return &MemoryRecordStore{
		collections: make(map[string][]byte),
		Log:         logger,
	}
}

func (s *MemoryRecordStore) LoadCollection(ctx context.Context, name string, dst interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decodeCollection(s.Log, name, s.collections[name], dst)
	return nil
}

func (s *MemoryRecordStore) SaveCollection(ctx context.Context, name string, records interface{}) error {
	payload, err := encodeCollection(records)
	if err != nil {
		return exceptions.ErrRecordStoreSave(err, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = payload
	return nil
}

func (s *MemoryRecordStore) UpdateCollection(ctx context.Context, name string, dst interface{}, mutate func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	decodeCollection(s.Log, name, s.collections[name], dst)
	if err := mutate(); err != nil {
		return err
	}

	payload, err := encodeCollection(dst)
	if err != nil {
		return exceptions.ErrRecordStoreSave(err, name)
	}
	s.collections[name] = payload
	return nil
}

// SetRaw replaces the stored text of a collection as is.
func (s *MemoryRecordStore) SetRaw(name string, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = []byte(raw)
}

// Raw returns the stored text of a collection.
func (s *MemoryRecordStore) Raw(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.collections[name])
}

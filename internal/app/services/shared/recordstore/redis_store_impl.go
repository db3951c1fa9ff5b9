package recordstore

import (
	"context"
	"errors"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisRecordStore stores each collection under one key. Updates use
// optimistic WATCH/MULTI transactions and retry when another writer
// touched the key first.
type RedisRecordStore struct {
	client     *redis.Client
	keyPrefix  string
	maxRetries int
	Log        *zap.Logger
}

func NewRedisRecordStore(client *redis.Client, keyPrefix string, maxRetries int, logger *zap.Logger) *RedisRecordStore {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RedisRecordStore{
		client:     client,
		keyPrefix:  keyPrefix,
		maxRetries: maxRetries,
		Log:        logger,
	}
}

func (s *RedisRecordStore) key(name string) string {
	return s.keyPrefix + name
}

func (s *RedisRecordStore) LoadCollection(ctx context.Context, name string, dst interface{}) error {
	raw, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.Log.Error("redisRecordStore.LoadCollection error reading collection",
			zap.String(constvars.LoggingCollectionKey, name),
			zap.Error(err),
		)
		return exceptions.ErrRecordStoreLoad(err, name)
	}

	decodeCollection(s.Log, name, raw, dst)
	return nil
}

func (s *RedisRecordStore) SaveCollection(ctx context.Context, name string, records interface{}) error {
	payload, err := encodeCollection(records)
	if err != nil {
		return exceptions.ErrRecordStoreSave(err, name)
	}

	err = s.client.Set(ctx, s.key(name), payload, 0).Err()
	if err != nil {
		s.Log.Error("redisRecordStore.SaveCollection error writing collection",
			zap.String(constvars.LoggingCollectionKey, name),
			zap.Error(err),
		)
		return exceptions.ErrRecordStoreSave(err, name)
	}
	return nil
}

func (s *RedisRecordStore) UpdateCollection(ctx context.Context, name string, dst interface{}, mutate func() error) error {
	key := s.key(name)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return exceptions.ErrRecordStoreLoad(err, name)
		}
		decodeCollection(s.Log, name, raw, dst)

		if err := mutate(); err != nil {
			return err
		}

		payload, err := encodeCollection(dst)
		if err != nil {
			return exceptions.ErrRecordStoreSave(err, name)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		s.Log.Warn("redisRecordStore.UpdateCollection concurrent write detected, retrying",
			zap.String(constvars.LoggingCollectionKey, name),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
	}

	s.Log.Error("redisRecordStore.UpdateCollection retries exhausted",
		zap.String(constvars.LoggingCollectionKey, name),
		zap.Int(constvars.LoggingAttemptKey, s.maxRetries),
	)
	return exceptions.ErrRecordStoreConflict(redis.TxFailedErr, name)
}

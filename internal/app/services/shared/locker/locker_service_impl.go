package locker

import (
	"context"
	"fmt"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewLockService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (s *lockService) Acquire(ctx context.Context, key string, ttl time.Duration) (*contracts.Lease, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.Acquire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationKey, ttl),
	)

	lease := &contracts.Lease{Key: key, Token: uuid.NewString(), TTL: ttl}
	acquired, err := s.RedisRepository.TrySetNX(ctx, key, lease.Token, ttl)
	if err != nil {
		s.Log.Error("lockService.Acquire error calling RedisRepository.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !acquired {
		s.Log.Info("lockService.Acquire lease held elsewhere",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil, nil
	}
	return lease, nil
}

func (s *lockService) Release(ctx context.Context, lease *contracts.Lease) error {
	if lease == nil {
		return nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("lockService.Release called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, lease.Key),
	)

	released, err := s.RedisRepository.CompareAndDelete(ctx, lease.Key, lease.Token)
	if err != nil {
		s.Log.Error("lockService.Release error calling RedisRepository.CompareAndDelete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// expired, or taken over after expiry
	if !released {
		s.Log.Warn("lockService.Release lease already gone",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lease.Key),
			zap.String(constvars.LoggingLockValueKey, lease.Token),
		)
	}
	return nil
}

func (s *lockService) Extend(ctx context.Context, lease *contracts.Lease) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	extended, err := s.RedisRepository.CompareAndExpire(ctx, lease.Key, lease.Token, lease.TTL)
	if err != nil {
		s.Log.Error("lockService.Extend error calling RedisRepository.CompareAndExpire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lease.Key),
			zap.Error(err),
		)
		return err
	}
	if !extended {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lease on %s lost before extend", lease.Key))
	}
	return nil
}

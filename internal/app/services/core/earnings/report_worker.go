package earnings

import (
	"context"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultLeaderLockTTL = 2 * time.Minute

// ReportWorker exports every hospital's earnings on a cron schedule. Only
// the instance holding the leader lock runs an export.
type ReportWorker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	earnings contracts.EarningsUsecase
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewReportWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, earningsUsecase contracts.EarningsUsecase) *ReportWorker {
	return &ReportWorker{log: log, cfg: cfg, locker: lockerSvc, earnings: earningsUsecase}
}

func (w *ReportWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Report.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("earnings.worker: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels the running export and waits for it to return.
func (w *ReportWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *ReportWorker) leaderTTL() time.Duration {
	if w.cfg.Report.LeaderLockTTLInSeconds <= 0 {
		return defaultLeaderLockTTL
	}
	return time.Duration(w.cfg.Report.LeaderLockTTLInSeconds) * time.Second
}

func (w *ReportWorker) runOnce(ctx context.Context) {
	ttl := w.leaderTTL()
	lease, err := w.locker.Acquire(ctx, constvars.RedisKeyReportLeaderLock, ttl)
	if err != nil {
		w.log.Warn("earnings.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if lease == nil {
		w.log.Info("earnings.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Release(context.WithoutCancel(ctx), lease); err != nil {
			w.log.Warn("earnings.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	extendCtx, stopExtending := context.WithCancel(ctx)
	defer stopExtending()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-extendCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Extend(extendCtx, lease); err != nil {
					w.log.Warn("earnings.worker: failed to extend leader lock", zap.Error(err))
				}
			}
		}
	}()

	written, err := w.earnings.ExportAllHospitalEarnings(ctx)
	if err != nil {
		w.log.Warn("earnings.worker: export finished with errors",
			zap.Int(constvars.LoggingCountKey, written),
			zap.Error(err),
		)
		return
	}
	w.log.Info("earnings.worker: export finished", zap.Int(constvars.LoggingCountKey, written))
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity"
	"github.com/robfig/cron/v3"
)

// DefaultSpec rebuilds the feed every five minutes
const DefaultSpec = "@every 5m"

const backfillTimeout = time.Minute

// cronLogger adapts ZapLogger to cron.Logger
type cronLogger struct {
	zl *logger.ZapLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.zl.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.zl.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

// BackfillScheduler periodically rebuilds the activity feed from Postgres
type BackfillScheduler struct {
	activityUC activity.ActivityUC
	cron       *cron.Cron
	entryID    cron.EntryID
	logger     *logger.ZapLogger
}

// NewBackfillScheduler registers the backfill job on the cron schedule. An empty schedule
// uses DefaultSpec.
func NewBackfillScheduler(spec string, activityUC activity.ActivityUC, zapLogger *logger.ZapLogger) (*BackfillScheduler, error) {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	if spec == "" {
		spec = DefaultSpec
	}

	cl := cronLogger{zl: zapLogger}
	s := &BackfillScheduler{
		activityUC: activityUC,
		logger:     zapLogger,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}

	id, err := s.cron.AddFunc(spec, s.Run)
	if err != nil {
		return nil, fmt.Errorf("invalid backfill schedule %q: %w", spec, err)
	}
	s.entryID = id
	return s, nil
}

// Run performs one backfill
func (s *BackfillScheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), backfillTimeout)
	defer cancel()

	start := time.Now()
	if err := s.activityUC.Backfill(ctx); err != nil {
		s.logger.Error("Activity backfill failed", logger.Err(err))
		return
	}
	s.logger.Debug("Activity backfill finished", logger.Duration("took", time.Since(start)))
}

// Start runs one backfill immediately and then schedules the job
func (s *BackfillScheduler) Start() {
	s.Run()
	s.cron.Start()
	s.logger.Info("Activity backfill scheduled", logger.Any("next", s.cron.Entry(s.entryID).Next))
}

// Stop halts scheduling and waits for a running job up to ctx
func (s *BackfillScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

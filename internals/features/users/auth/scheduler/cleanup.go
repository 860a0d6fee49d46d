package scheduler

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	helperAuth "gradebook_backend/internals/helpers/auth"
)

const purgeTimeout = 30 * time.Second

// PurgeOnce deletes blacklist rows whose token has already expired.
func PurgeOnce(ctx context.Context, db *gorm.DB, logger log.Logger) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	n, err := helperAuth.PurgeExpired(ctx, db, time.Now())
	if err != nil {
		level.Error(logger).Log("msg", "blacklist purge failed", "err", err)
		return 0, err
	}
	if n > 0 {
		level.Info(logger).Log("msg", "blacklist purged", "rows", n)
	}
	return n, nil
}

// cronLogger feeds robfig/cron's own events into go-kit.
type cronLogger struct{ l log.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	level.Debug(c.l).Log(append([]interface{}{"msg", msg}, keysAndValues...)...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	level.Error(c.l).Log(append([]interface{}{"msg", msg, "err", err}, keysAndValues...)...)
}

// StartBlacklistCleanupScheduler registers the purge job on a fresh cron
// runner and starts it. The caller stops the returned cron on shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB, spec string, logger log.Logger) (*cron.Cron, error) {
	if spec == "" {
		spec = "@every 1h"
	}
	logger = log.With(logger, "job", "token_blacklist_cleanup")

	cl := cronLogger{l: logger}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	if _, err := c.AddFunc(spec, func() {
		_, _ = PurgeOnce(context.Background(), db, logger)
	}); err != nil {
		return nil, err
	}
	c.Start()
	level.Info(logger).Log("msg", "scheduler started", "spec", spec)
	return c, nil
}

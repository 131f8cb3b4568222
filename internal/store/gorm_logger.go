package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bookreviews/internal/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends gorm's output through the request-scoped slog logger.
// Only failed and slow statements are reported; record-not-found is a
// normal lookup result and is never logged.
type gormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*gormLogger)(nil)

func newGormLogger() *gormLogger {
	return &gormLogger{level: gormlogger.Warn, slowThreshold: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		logging.Info(l.ctx(ctx), fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		logging.Warn(l.ctx(ctx), fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		logging.Error(l.ctx(ctx), fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logging.Error(l.ctx(ctx), "query failed", logging.Err(err),
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logging.Warn(l.ctx(ctx), "slow query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logging.Debug(l.ctx(ctx), "query", slog.String("sql", sql), slog.Int64("rows", rows))
	}
}

func (l *gormLogger) ctx(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithAttrs(ctx, slog.String("component", "gorm"))
}

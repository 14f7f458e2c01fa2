package gormdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"todolist/config"
	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// sqlLogger sends gorm output to slog. Queries run inside a request use the
// request logger and so carry its request id.
type sqlLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &sqlLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *sqlLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *sqlLogger) Info(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (l *sqlLogger) Warn(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (l *sqlLogger) Error(ctx context.Context, format string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (l *sqlLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if l.level < threshold {
		return
	}

	l.scoped(ctx).Log(ctx, level, fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}

// Trace reports failed queries, then slow ones, and in Info mode every query.
// A missing row is an expected outcome and is not reported as a failure.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error
	slow := l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn
	if !failed && !slow && l.level < gormlogger.Info {
		return
	}

	query, rows := fc()
	attrs := []slog.Attr{
		slog.String("component", "gorm"),
		slog.String("sql", query),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	logger := l.scoped(ctx)
	switch {
	case failed:
		logger.LogAttrs(ctx, slog.LevelError, "query failed", append(attrs, slog.String("error", err.Error()))...)
	case slow:
		logger.LogAttrs(ctx, slog.LevelWarn, "slow query", append(attrs, slog.Duration("threshold", l.slow))...)
	default:
		logger.LogAttrs(ctx, slog.LevelDebug, "query", attrs...)
	}
}

func (l *sqlLogger) scoped(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

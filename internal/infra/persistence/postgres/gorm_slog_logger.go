package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// QueryObserver receives the outcome of every statement GORM executes.
type QueryObserver interface {
	ObserveQuery(statement string, elapsed time.Duration, failed bool)
}

// gormSlogLogger writes GORM output through the request-scoped slog logger so
// SQL lines carry the request id and caller of the request that issued them.
type gormSlogLogger struct {
	fallback      *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	observer      QueryObserver
}

func newGormSlogLogger(base *slog.Logger, debug bool, slowThreshold time.Duration, observer QueryObserver) *gormSlogLogger {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	if slowThreshold <= 0 {
		slowThreshold = defaultSlowQueryThreshold
	}

	return &gormSlogLogger{
		fallback:      base,
		level:         level,
		slowThreshold: slowThreshold,
		observer:      observer,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < enabledAt {
		return
	}
	if log := l.loggerFor(ctx); log != nil {
		log.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := sqlAndRowsFn()

	// Missing rows are an expected lookup outcome; repositories map them.
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	if l.observer != nil {
		l.observer.ObserveQuery(statementKind(sql), elapsed, failed)
	}

	log := l.loggerFor(ctx)
	if log == nil || l.level == logger.Silent {
		return
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case failed && l.level >= logger.Error:
		log.LogAttrs(ctx, slog.LevelError, "Database query failed", append(attrs, slog.String("error", err.Error()))...)
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "Slow database query", append(attrs, slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "Database query", attrs...)
	}
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

// statementKind reduces a statement to its leading keyword for metric labels.
func statementKind(sql string) string {
	keyword, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	switch keyword = strings.ToLower(keyword); keyword {
	case "select", "insert", "update", "delete":
		return keyword
	default:
		return "other"
	}
}

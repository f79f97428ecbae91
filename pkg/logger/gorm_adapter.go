package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comedor/infrastructure/persistence"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormAdapter routes GORM's logging through zap, tagging entries with the
// request ID when one is carried by the context.
type GormAdapter struct {
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormAdapter creates the adapter at the given GORM log level.
func NewGormAdapter(logLevel gormlogger.LogLevel) *GormAdapter {
	return &GormAdapter{
		logLevel:      logLevel,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode returns a copy at a different level.
func (l *GormAdapter) LogMode(logLevel gormlogger.LogLevel) gormlogger.Interface {
	return &GormAdapter{logLevel: logLevel, slowThreshold: l.slowThreshold}
}

func (l *GormAdapter) logger(ctx context.Context) *zap.Logger {
	base := log
	if base == nil {
		base = zap.NewNop()
	}
	if requestID := persistence.RequestIDFromContext(ctx); requestID != "" {
		base = base.With(zap.String("request_id", requestID))
	}
	return base
}

func (l *GormAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.logger(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.logger(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.logger(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

// Trace logs each SQL statement with its latency, flagging slow queries.
// Record-not-found is expected on lookup paths and not logged as an error.
func (l *GormAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}
	zl := l.logger(ctx)

	if err != nil && l.logLevel >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound) {
		zl.Error("database operation failed", append(fields, zap.Error(err))...)
		return
	}

	if l.slowThreshold != 0 && elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn {
		zl.Warn("slow sql query", fields...)
		return
	}

	if l.logLevel >= gormlogger.Info {
		zl.Info("sql query executed", fields...)
	}
}

var _ gormlogger.Interface = (*GormAdapter)(nil)

package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// QueryLogger adapts zap to GORM's logger interface. Successful queries
// log at debug, slow ones at warn, failures at error. Record-not-found
// is suppressed by default because repositories translate it into a
// domain error before it reaches a caller.
type QueryLogger struct {
	log         *zap.Logger
	level       gormlogger.LogLevel
	slowQuery   time.Duration
	logNotFound bool
}

// QueryLoggerOption configures a QueryLogger
type QueryLoggerOption func(*QueryLogger)

// WithSlowQueryThreshold overrides the duration above which a query is
// reported as slow
func WithSlowQueryThreshold(d time.Duration) QueryLoggerOption {
	return func(l *QueryLogger) {
		l.slowQuery = d
	}
}

// WithNotFoundLogging enables error logging for record-not-found results
func WithNotFoundLogging() QueryLoggerOption {
	return func(l *QueryLogger) {
		l.logNotFound = true
	}
}

// NewQueryLogger builds a GORM logger on top of zap. The level string
// follows the application log levels (silent, error, warn, info, debug).
func NewQueryLogger(log *zap.Logger, level string, opts ...QueryLoggerOption) *QueryLogger {
	ql := &QueryLogger{
		log:       log.Named("sql"),
		level:     gormLevel(level),
		slowQuery: defaultSlowQueryThreshold,
	}
	for _, opt := range opts {
		opt(ql)
	}
	return ql
}

func gormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// LogMode implements gormlogger.Interface
func (l *QueryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *QueryLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...))
	}
}

// Warn implements gormlogger.Interface
func (l *QueryLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...))
	}
}

// Error implements gormlogger.Interface
func (l *QueryLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace implements gormlogger.Interface. Every executed statement comes
// through here with its duration and row count.
func (l *QueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	fields := l.traceFields(ctx, time.Since(begin), sql, rows)

	switch {
	case err != nil && l.level >= gormlogger.Error:
		if !l.logNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		l.log.Error("query failed", append(fields, zap.Error(err))...)

	case l.slowQuery > 0 && time.Since(begin) > l.slowQuery && l.level >= gormlogger.Warn:
		l.log.Warn("slow query", append(fields, zap.Duration("threshold", l.slowQuery))...)

	case l.level >= gormlogger.Info:
		l.log.Debug("query", fields...)
	}
}

func (l *QueryLogger) traceFields(ctx context.Context, elapsed time.Duration, sql string, rows int64) []zap.Field {
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}

package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const maxLoggedSQL = 1000

// GormLogger sends gorm's statement log to zap. Every entry carries the SQL
// verb and a read_only flag; the service only reads the users table, so a
// write outside a migration stands out in the log.
type GormLogger struct {
	log           *zap.Logger
	slowThreshold time.Duration
	level         gormlogger.LogLevel
}

// NewGormLogger maps the application log level onto gorm's: debug logs every
// statement, info and warn log slow ones and failures, error only failures.
func NewGormLogger(log *zap.Logger, slowThreshold time.Duration, appLevel string) *GormLogger {
	return &GormLogger{
		log:           log.Named("gorm"),
		slowThreshold: slowThreshold,
		level:         gormLevel(appLevel),
	}
}

func gormLevel(appLevel string) gormlogger.LogLevel {
	switch strings.ToLower(appLevel) {
	case "debug":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}

// LogMode implements gormlogger.Interface.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		WithContext(ctx, l.log).Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface.
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		WithContext(ctx, l.log).Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface.
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		WithContext(ctx, l.log).Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface. A lookup miss is not a failure.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.level >= gormlogger.Error:
		l.statement(ctx, elapsed, fc).Error("query failed", zap.Error(err))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.statement(ctx, elapsed, fc).Warn("slow query", zap.Duration("threshold", l.slowThreshold))
	case l.level >= gormlogger.Info:
		l.statement(ctx, elapsed, fc).Debug("query")
	}
}

func (l *GormLogger) statement(ctx context.Context, elapsed time.Duration, fc func() (string, int64)) *zap.Logger {
	sql, rows := fc()
	verb := sqlVerb(sql)
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}
	return WithContext(ctx, l.log).With(
		zap.String("op", verb),
		zap.Bool("read_only", verb == "SELECT"),
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	)
}

func sqlVerb(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

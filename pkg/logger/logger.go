package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the LOG_* settings plus the identity fields stamped on
// every entry.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	OutputPath  string // stdout, stderr or a file path rotated by lumberjack
	Sampling    bool
	Service     string
	Version     string
	Environment string
}

// Rotation limits for file output.
const (
	rotateMaxSizeMB  = 100
	rotateMaxBackups = 3
	rotateMaxAgeDays = 28
)

// New builds the process logger. An unknown level is a configuration error.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg), newWriter(cfg.OutputPath), level)
	if cfg.Sampling {
		// first 100 entries per second, then every 10th
		core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 10)
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).With(
		zap.String("service", cfg.Service),
		zap.String("version", cfg.Version),
		zap.String("environment", cfg.Environment),
	), nil
}

// ParseLevel accepts zap's level names, case-insensitively, plus "warning".
// Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.EqualFold(s, "warning") {
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

func newEncoder(cfg Config) zapcore.Encoder {
	if cfg.Format == "json" {
		ec := zap.NewProductionEncoderConfig()
		ec.TimeKey = "timestamp"
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	if cfg.Environment != "production" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

func newWriter(outputPath string) zapcore.WriteSyncer {
	switch outputPath {
	case "stdout", "":
		return zapcore.Lock(os.Stdout)
	case "stderr":
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   outputPath,
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		MaxAge:     rotateMaxAgeDays,
		Compress:   true,
	})
}

type ctxKey int

const (
	requestIDKey ctxKey = iota
	sessionUserKey
)

// WithRequestID stores the request id used to correlate log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithSessionUser stores the signed-in user's id for log correlation.
func WithSessionUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, sessionUserKey, userID)
}

// GetRequestID returns the request id stored in ctx, if any.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// GetSessionUser returns the session user id stored in ctx, if any.
func GetSessionUser(ctx context.Context) string {
	id, _ := ctx.Value(sessionUserKey).(string)
	return id
}

// WithContext returns log annotated with the request id and session user
// found in ctx. log itself is returned when ctx carries neither.
func WithContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	var fields []zap.Field
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if id := GetSessionUser(ctx); id != "" {
		fields = append(fields, zap.String("session_user", id))
	}
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}

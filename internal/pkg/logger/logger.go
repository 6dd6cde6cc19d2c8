package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ProductionMode  = "production"
	DevelopmentMode = "development"
)

type ctxKey string

const (
	RequestIDKey ctxKey = "request_id"
	UserIDKey    ctxKey = "user_id"
)

// New builds a zap logger for the given app environment and installs it
// as the global logger, so zap.L() works in packages without injection.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if IsProduction(env) {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

func IsProduction(env string) bool {
	return env == ProductionMode || env == "prod" || env == "release"
}

// FromContext returns the global logger enriched with request scoped fields.
func FromContext(ctx context.Context) *zap.Logger {
	l := zap.L()
	if ctx == nil {
		return l
	}
	var fields []zap.Field
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		fields = append(fields, zap.String(string(RequestIDKey), requestID))
	}
	if userID, ok := ctx.Value(UserIDKey).(int64); ok && userID != 0 {
		fields = append(fields, zap.Int64(string(UserIDKey), userID))
	}
	return l.With(fields...)
}

package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
	Sync() error
}

type zapLogger struct {
	log *zap.Logger
}

// New builds a JSON logger on stdout tagged with the service name and host
func New(service string) Logger {
	return NewWithOutput(service, "stdout")
}

// NewWithOutput is New writing to the given zap output paths
func NewWithOutput(service string, outputs ...string) Logger {
	hostname, _ := os.Hostname()

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = outputs
	cfg.EncoderConfig.TimeKey = FieldTimestamp
	cfg.EncoderConfig.MessageKey = FieldMessage
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}

	return Wrap(base.With(zap.String(FieldService, service), zap.String(FieldHostname, hostname)))
}

// Wrap adapts an existing zap logger
func Wrap(log *zap.Logger) Logger {
	return &zapLogger{log: log}
}

// Nop discards everything
func Nop() Logger {
	return Wrap(zap.NewNop())
}

func (l *zapLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.log.Info(message, fields(action, requestID, details, nil)...)
}

func (l *zapLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.log.Debug(message, fields(action, requestID, details, nil)...)
}

func (l *zapLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	l.log.Error(message, fields(action, requestID, details, err)...)
}

func (l *zapLogger) Sync() error {
	return l.log.Sync()
}

func fields(action, requestID string, details map[string]interface{}, err error) []zap.Field {
	fs := []zap.Field{
		zap.String(FieldAction, action),
		zap.String(FieldRequestID, requestID),
	}
	if len(details) > 0 {
		fs = append(fs, zap.Any(FieldDetails, details))
	}
	if err != nil {
		fs = append(fs, zap.NamedError(FieldError, err))
	}
	return fs
}

package litegraph

import (
	"go.uber.org/zap"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// ZapLogger adapts a *zap.Logger to Logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps logger. A nil logger yields a no-op logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{logger: logger}
}

// Debug implements Logger.
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, zapFields(fields)...)
}

// Info implements Logger.
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, zapFields(fields)...)
}

// Warn implements Logger.
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, zapFields(fields)...)
}

// Error implements Logger.
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func zapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))

			continue
		}

		out = append(out, zap.Any(k, v))
	}

	return out
}

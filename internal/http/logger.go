package http

import (
	"fmt"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

// leveledLogger forwards retryablehttp's internal logging to a
// litegraph.Logger.
type leveledLogger struct {
	logger litegraph.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(keysAndValues)/2+1)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])

		if i+1 == len(keysAndValues) {
			fields[key] = nil

			break
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}

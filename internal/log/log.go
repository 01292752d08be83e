// Package log builds the logrus logger used by the baseconv command.
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// InitLogs returns a text logger writing to out. Only warnings and errors are
// emitted unless verbose is set, which enables debug output with caller info.
func InitLogs(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		log.SetReportCaller(true)
	}
	return log
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or a logger that
// discards everything.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger); ok {
			return l
		}
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

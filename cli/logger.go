package cli

import (
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
)

// NewLogger builds the pretty root logger. Verbose raises the level to trace.
func NewLogger(verbose bool) *glog.BaseLogger {
	level := glog.Warn
	if verbose {
		level = glog.Trace
	}
	return glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(level),
		glog.WithName("app"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)
}

// loggerAdapter adapts glog.Logger to types.Logger
type loggerAdapter struct {
	l glog.Logger
}

func (a *loggerAdapter) Debug(msg string, args ...any) {
	a.l.Debug(msg, args...)
}

func (a *loggerAdapter) Info(msg string, args ...any) {
	a.l.Info(msg, args...)
}

func (a *loggerAdapter) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	a.l.Error(msg, args...)
}

// Package logging wraps a process-wide zap sugared logger. Commands run with
// a no-op logger unless --debug is set; user-facing output stays on plain
// stdout/stderr.
package logging

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// Init configures the package logger. With debug off it stays a no-op.
func Init(debug bool) {
	if !debug {
		logger = zap.NewNop().Sugar()
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	zap.ReplaceGlobals(l)
	logger = l.Sugar()
}

// L returns the process logger.
func L() *zap.SugaredLogger {
	return logger
}

// Package logging builds the structured logger the parser uses for
// recognizer tracing, wrapping charmbracelet/log.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a stderr logger at the given level, configured for trace
// output: no timestamps, no caller reporting. Valid levels are "debug",
// "info", "warn" and "error"; anything else means info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

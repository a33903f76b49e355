// logging.go - package-level structured logger (ambient stack)

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var logger = newLogger()

// newLogger builds the package logger from DEISS_LOG_LEVEL (debug, info,
// warn, error; default info). Never called on the per-frame hot path —
// only at startup, warp-worker faults, and backend errors (§6).
func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "deiss",
	})
	l.SetLevel(levelFromEnv())
	return l
}

func levelFromEnv() log.Level {
	switch strings.ToLower(os.Getenv("DEISS_LOG_LEVEL")) {
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

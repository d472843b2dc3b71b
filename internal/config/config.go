// Package config handles logger and terminal setup of the listing tool.
package config

import (
	"os"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// noColorEnv disables colored output when set to any value, see https://no-color.org.
const noColorEnv = "NO_COLOR"

// CreateLogger creates a logger for the given verbosity flags. Debug takes
// precedence over quiet. Logs are written to stderr to keep listings printed
// on stdout clean.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ColorEnabled returns whether colored listing output should be written to out.
// Color is only used when requested, the output is a terminal and the NO_COLOR
// environment variable is not set.
func ColorEnabled(requested bool, out *os.File) bool {
	if !requested || out == nil {
		return false
	}
	if _, ok := os.LookupEnv(noColorEnv); ok {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}

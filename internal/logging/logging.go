// SPDX-License-Identifier: MIT

// Package logging builds the diagnostics logger written to stderr.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Level maps the -v count and -q switch to a zerolog level.
func Level(verbosity int, quiet bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// New returns a console logger on w. Color is used only when the
// diagnostics stream supports it.
func New(w io.Writer, verbosity int, quiet bool, color bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	logger := zerolog.New(console).Level(Level(verbosity, quiet))
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

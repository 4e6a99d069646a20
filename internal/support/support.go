// SPDX-License-Identifier: MIT

// Package support decides whether ANSI escape sequences are meaningful
// for the current output.
package support

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Mode selects how detection is performed.
type Mode string

const (
	// ModeAuto inspects the environment and the output stream.
	ModeAuto Mode = "auto"
	// ModeAlways forces escape sequences on.
	ModeAlways Mode = "always"
	// ModeNever forces escape sequences off.
	ModeNever Mode = "never"
)

// ParseMode accepts a mode name, case-insensitively. Empty means auto.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", fmt.Errorf("unsupported ansi mode %q (expected auto, always, or never)", value)
	}
}

// ModeFromFlags maps the --ANSI and --noANSI switches onto a mode. Forcing
// on wins when both are given.
func ModeFromFlags(base Mode, force, disable bool) Mode {
	switch {
	case force:
		return ModeAlways
	case disable:
		return ModeNever
	default:
		return base
	}
}

var errNotAFile = errors.New("output is not a file descriptor")

// Options describes the environment to inspect. Nil functions default to
// the process environment and the real terminal probes.
type Options struct {
	Mode       Mode
	Out        io.Writer
	Getenv     func(string) string
	IsTerminal func(fd uintptr) bool
	Logger     zerolog.Logger
}

// Detect reports whether escape sequences should be emitted. Detection
// failures are logged and treated as unsupported.
func Detect(opts Options) (supported bool) {
	defer func() {
		if r := recover(); r != nil {
			opts.Logger.Warn().Interface("panic", r).Msg("ansi support detection failed; disabling color tags")
			supported = false
		}
	}()
	ok, err := detect(opts)
	if err != nil {
		opts.Logger.Debug().Err(err).Msg("ansi support detection fell back to unsupported")
		return false
	}
	return ok
}

func detect(opts Options) (bool, error) {
	switch opts.Mode {
	case ModeAlways:
		return true, nil
	case ModeNever:
		return false, nil
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	termName := strings.TrimSpace(getenv("TERM"))
	if termName == "" || termName == "unknown" {
		return false, nil
	}
	// NO_COLOR is a standard opt-out and behaves like --noANSI.
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		return false, nil
	}
	file, ok := opts.Out.(interface{ Fd() uintptr })
	if !ok {
		return false, errNotAFile
	}
	isTerminal := opts.IsTerminal
	if isTerminal == nil {
		isTerminal = IsTerminal
	}
	return isTerminal(file.Fd()), nil
}

// IsTerminal reports whether fd refers to a terminal, including Cygwin
// and MSYS ptys.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

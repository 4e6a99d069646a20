// SPDX-License-Identifier: MIT

// Package termstyle writes tagged strings to streams.
package termstyle

import (
	"fmt"
	"io"
	"strings"

	"github.com/skaphos/colortags/internal/markup"
)

// Options configures a Printer.
type Options struct {
	// Delimiters enclose tag names; empty fields use the defaults.
	Delimiters markup.Delimiters
	// Separator goes between items in EmitLine. Empty means a space
	// unless NoSeparator is set.
	Separator string
	// LineEnd terminates EmitLine output. Empty means a newline unless
	// NoLineEnd is set.
	LineEnd string
	// NoSeparator joins EmitLine items directly.
	NoSeparator bool
	// NoLineEnd leaves EmitLine output unterminated.
	NoLineEnd bool
	// Erase strips tags in EmitLine instead of substituting them.
	Erase bool
	// NoFlush skips flushing the stream after each write.
	NoFlush bool
}

// DefaultOptions mirrors a plain print call.
func DefaultOptions() Options {
	return Options{
		Delimiters: markup.DefaultDelimiters,
		Separator:  " ",
		LineEnd:    "\n",
	}
}

type flusher interface {
	Flush() error
}

// Printer renders tagged strings through an engine onto a stream.
type Printer struct {
	engine *markup.Engine
	out    io.Writer
	opts   Options
}

// New returns a Printer writing to out. Empty delimiters, separator and
// line end take their defaults.
func New(engine *markup.Engine, out io.Writer, opts Options) *Printer {
	if opts.Delimiters.Left == "" || opts.Delimiters.Right == "" {
		opts.Delimiters = engine.Delimiters()
	}
	defaults := DefaultOptions()
	switch {
	case opts.NoSeparator:
		opts.Separator = ""
	case opts.Separator == "":
		opts.Separator = defaults.Separator
	}
	switch {
	case opts.NoLineEnd:
		opts.LineEnd = ""
	case opts.LineEnd == "":
		opts.LineEnd = defaults.LineEnd
	}
	return &Printer{engine: engine, out: out, opts: opts}
}

// Options returns the printer configuration.
func (p *Printer) Options() Options { return p.opts }

// Writer returns the underlying stream.
func (p *Printer) Writer() io.Writer { return p.out }

// Render substitutes tags in tagged.
func (p *Printer) Render(tagged string) string {
	return p.engine.Substitute(tagged, p.opts.Delimiters)
}

// Erase strips tags from tagged.
func (p *Printer) Erase(tagged string) string {
	return p.engine.Strip(tagged, p.opts.Delimiters)
}

// Emit writes the rendered string without a line terminator, then flushes
// the stream unless NoFlush is set.
func (p *Printer) Emit(tagged string) error {
	if _, err := io.WriteString(p.out, p.Render(tagged)); err != nil {
		return err
	}
	return p.flush()
}

// Emitf formats then emits.
func (p *Printer) Emitf(format string, args ...any) error {
	return p.Emit(fmt.Sprintf(format, args...))
}

// EmitLine renders (or erases) every string item, passes other items
// through fmt, and writes them joined by Separator and ended by LineEnd.
func (p *Printer) EmitLine(items ...any) error {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		switch {
		case !ok:
			parts = append(parts, fmt.Sprint(item))
		case p.opts.Erase:
			parts = append(parts, p.Erase(s))
		default:
			parts = append(parts, p.Render(s))
		}
	}
	line := strings.Join(parts, p.opts.Separator) + p.opts.LineEnd
	if _, err := io.WriteString(p.out, line); err != nil {
		return err
	}
	return p.flush()
}

// ClearLine erases the current line.
func (p *Printer) ClearLine() { _ = p.emitTag("el") }

// ClearScreen clears the screen.
func (p *Printer) ClearScreen() { _ = p.emitTag("clear") }

// ResetAll restores the default colors and disables all effects.
func (p *Printer) ResetAll() { _ = p.emitTag("reset") }

func (p *Printer) emitTag(name string) error {
	d := p.opts.Delimiters
	return p.Emit(d.Left + name + d.Right)
}

func (p *Printer) flush() error {
	if p.opts.NoFlush {
		return nil
	}
	if f, ok := p.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

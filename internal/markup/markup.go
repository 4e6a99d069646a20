// SPDX-License-Identifier: MIT

// Package markup rewrites delimiter-enclosed tag names in a string,
// either substituting their codes or erasing them.
package markup

import (
	"strings"

	"github.com/skaphos/colortags/internal/tagtable"
)

// Delimiters enclose a tag name.
type Delimiters struct {
	Left  string
	Right string
}

// DefaultDelimiters is the Pango-style pair.
var DefaultDelimiters = Delimiters{Left: "<", Right: ">"}

// orDefault replaces an empty delimiter with its default counterpart.
func (d Delimiters) orDefault() Delimiters {
	if d.Left == "" {
		d.Left = DefaultDelimiters.Left
	}
	if d.Right == "" {
		d.Right = DefaultDelimiters.Right
	}
	return d
}

// Transform rewrites every known tag in input with replace(tag). Text
// enclosed in delimiters that is not a known tag keeps its delimiters. A
// left delimiter with no right delimiter after it is plain text, even
// when a known name follows it: "abc<red" stays "abc<red" with real codes
// too. A rewrite that classifies the text after the last left delimiter
// before looking for a right one would emit the red code there instead;
// Transform does not.
//
// The leading segment, which is not preceded by a left delimiter, is
// treated like any other closed segment: an unknown name before the first
// right delimiter gets a left delimiter prepended ("a>b" becomes "<a>b")
// and a known one is substituted ("red>b" becomes the red code then "b").
func Transform(input string, delims Delimiters, known func(string) bool, replace func(string) string) string {
	delims = delims.orDefault()
	var b strings.Builder
	b.Grow(len(input))
	for i, segment := range strings.Split(input, delims.Left) {
		parts := strings.Split(segment, delims.Right)
		head := parts[0]
		switch {
		case len(parts) == 1:
			if i > 0 {
				head = delims.Left + head
			}
		case known(head):
			head = replace(head)
		default:
			head = delims.Left + head + delims.Right
		}
		b.WriteString(head)
		// Text after the first right delimiter is literal; the delimiters
		// between those pieces were consumed by Split.
		for _, part := range parts[1:] {
			b.WriteString(part)
		}
	}
	return b.String()
}

// Engine applies a tag table to tagged strings.
type Engine struct {
	table  tagtable.Table
	delims Delimiters
}

// New returns an engine over table using delims as its default pair.
func New(table tagtable.Table, delims Delimiters) *Engine {
	return &Engine{table: table, delims: delims.orDefault()}
}

// Table returns the engine's tag table.
func (e *Engine) Table() tagtable.Table { return e.table }

// Delimiters returns the engine's default delimiter pair.
func (e *Engine) Delimiters() Delimiters { return e.delims }

// Sprint substitutes tags using the default delimiters.
func (e *Engine) Sprint(input string) string {
	return e.Substitute(input, e.delims)
}

// Erase strips tags using the default delimiters.
func (e *Engine) Erase(input string) string {
	return e.Strip(input, e.delims)
}

// Substitute replaces every known tag with its code.
func (e *Engine) Substitute(input string, delims Delimiters) string {
	return Transform(input, delims, e.table.Has, e.table.Code)
}

// Strip removes every known tag.
func (e *Engine) Strip(input string, delims Delimiters) string {
	return Transform(input, delims, e.table.Has, func(string) string { return "" })
}

// SPDX-License-Identifier: MIT

// Package tagtable holds the canonical set of color tags and the
// read-only table mapping each tag name to its ANSI escape sequence.
package tagtable

const (
	esc = "\x1b"

	// Bold foreground colors.
	codeBlack   = esc + "[01;30m"
	codeRed     = esc + "[01;31m"
	codeGreen   = esc + "[01;32m"
	codeYellow  = esc + "[01;33m"
	codeBlue    = esc + "[01;34m"
	codeMagenta = esc + "[01;35m"
	codeCyan    = esc + "[01;36m"
	codeWhite   = esc + "[01;37m"

	// Non-bold foreground colors.
	codeBBlack   = esc + "[02;30m"
	codeBRed     = esc + "[02;31m"
	codeBGreen   = esc + "[02;32m"
	codeBYellow  = esc + "[02;33m"
	codeBBlue    = esc + "[02;34m"
	codeBMagenta = esc + "[02;35m"
	codeBCyan    = esc + "[02;36m"
	codeBWhite   = esc + "[02;37m"

	// Background colors.
	codeBgBlack   = esc + "[40m"
	codeBgRed     = esc + "[41m"
	codeBgGreen   = esc + "[42m"
	codeBgYellow  = esc + "[43m"
	codeBgBlue    = esc + "[44m"
	codeBgMagenta = esc + "[45m"
	codeBgCyan    = esc + "[46m"
	codeBgWhite   = esc + "[47m"

	codeBlink     = esc + "[05m"
	codeBlinkFast = esc + "[06m"

	codeNoColors   = esc + "[0m"
	codeDefault    = esc + "[39m"
	codeDefaultBg  = esc + "[49m"
	codeReset      = esc + "[0;39;49m"
	codeItalic     = esc + "[3m"
	codeItalicOff  = esc + "[23m"
	codeBold       = esc + "[1m"
	codeBoldOff    = esc + "[2m"
	codeUnder      = esc + "[4m"
	codeUnderOff   = esc + "[24m"
	codeNegative   = esc + "[7m"
	codeNegOff     = esc + "[27m"
	codeClear      = esc + "[2J"
	codeEraseLine  = "\r" + esc + "[K"
	codeBell       = "\a"
	codeTitleStart = esc + "]0;"
)

// Tag is a named terminal effect.
type Tag struct {
	Name string
	Code string
}

// canonical is the compiled-in tag list, in the order tags are listed
// and generated.
var canonical = []Tag{
	{"black", codeBlack},
	{"red", codeRed},
	{"green", codeGreen},
	{"yellow", codeYellow},
	{"blue", codeBlue},
	{"magenta", codeMagenta},
	{"cyan", codeCyan},
	{"white", codeWhite},

	{"Bblack", codeBBlack},
	{"Bred", codeBRed},
	{"Bgreen", codeBGreen},
	{"Byellow", codeBYellow},
	{"Bblue", codeBBlue},
	{"Bmagenta", codeBMagenta},
	{"Bcyan", codeBCyan},
	{"Bwhite", codeBWhite},

	{"Black", codeBgBlack},
	{"Red", codeBgRed},
	{"Green", codeBgGreen},
	{"Yellow", codeBgYellow},
	{"Blue", codeBgBlue},
	{"Magenta", codeBgMagenta},
	{"Cyan", codeBgCyan},
	{"White", codeBgWhite},

	{"Blink", codeBlinkFast},
	{"blink", codeBlink},

	{"nocolors", codeNoColors},
	{"default", codeDefault},
	{"Default", codeDefaultBg},

	{"italic", codeItalic},
	{"Italic", codeItalicOff},
	{"b", codeBold},
	{"B", codeBoldOff},
	{"u", codeUnder},
	{"U", codeUnderOff},
	{"neg", codeNegative},
	{"Neg", codeNegOff},

	{"clear", codeClear},
	{"el", codeEraseLine},
	{"reset", codeReset},
	{"bell", codeBell},
	{"title", codeTitleStart},

	// Composite aliases.
	{"warning", codeReset + codeRed + codeUnder + `/!\` + codeUnderOff + codeReset},
	{"question", codeReset + codeYellow + codeUnder + `/?\` + codeUnderOff + codeReset},
	{"ERROR", codeReset + codeRed + "ERROR" + codeReset},
	{"WARNING", codeReset + codeYellow + "WARNING" + codeReset},
	{"INFO", codeReset + codeBlue + "INFO" + codeReset},
}

// Simple lists the eight base color names.
var Simple = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Canonical returns a copy of the compiled-in tag list with real codes.
func Canonical() []Tag {
	out := make([]Tag, len(canonical))
	copy(out, canonical)
	return out
}

// Table maps tag names to codes. The zero value recognizes no tags.
// A Table is never mutated after Build and is safe for concurrent use.
type Table struct {
	codes     map[string]string
	names     []string
	supported bool
}

// Build returns the table for the canonical tags. When supported is false
// every name is still present but maps to the empty string, so tags are
// recognized and removed without any visual effect.
func Build(supported bool) Table {
	t := Table{
		codes:     make(map[string]string, len(canonical)),
		names:     make([]string, 0, len(canonical)),
		supported: supported,
	}
	for _, tag := range canonical {
		code := tag.Code
		if !supported {
			code = ""
		}
		t.codes[tag.Name] = code
		t.names = append(t.names, tag.Name)
	}
	return t
}

// Lookup returns the code for name and whether name is a known tag.
func (t Table) Lookup(name string) (string, bool) {
	code, ok := t.codes[name]
	return code, ok
}

// Code returns the code for name, or "" for unknown names.
func (t Table) Code(name string) string {
	return t.codes[name]
}

// Has reports whether name is a known tag.
func (t Table) Has(name string) bool {
	_, ok := t.codes[name]
	return ok
}

// Names returns the tag names in canonical order.
func (t Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of known tags.
func (t Table) Len() int { return len(t.names) }

// Supported reports whether the table was built with real codes.
func (t Table) Supported() bool { return t.supported }

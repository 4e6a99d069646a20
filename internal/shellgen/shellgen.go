// SPDX-License-Identifier: MIT

// Package shellgen writes the tag table as a shell-sourceable profile of
// export statements.
package shellgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/skaphos/colortags/internal/tagtable"
)

const header = `#!/bin/sh
# Generated by "colortags generate". Source it from other shell scripts:
#   . ~/.color.sh
#
# Naming conventions:
# * for the eight colors black, red, green, yellow, blue, magenta, cyan, white:
#   * the lowercase name is the color with bold (example 'yellow'),
#   * the name starting with 'B' is the color without bold (example 'Byellow'),
#   * the capitalized name is the background color (example 'Yellow').
# * for the special effects (blink, italic, bold, underline, negative), not always supported:
#   * the lowercase name turns the effect on,
#   * the capitalized name turns the effect off.
# * the other effects (nocolors, default, Default, clear, el) are immediate.
#
# List of colors:
`

const footer = "#DONE\n"

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
	"`", "\\`",
	"\x1b", `\033`,
	"\r", `\r`,
	"\a", `\007`,
)

// EscapeValue renders a code as printable text safe inside double quotes.
func EscapeValue(code string) string {
	return valueEscaper.Replace(code)
}

// Line returns the export statement for one tag.
func Line(tag tagtable.Tag) string {
	return fmt.Sprintf("export %s=\"%s\"\n", tag.Name, EscapeValue(tag.Code))
}

// Write emits the profile for tags to w.
func Write(w io.Writer, tags []tagtable.Tag) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	for _, tag := range tags {
		if _, err := bw.WriteString(Line(tag)); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(footer); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write shell profile: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: MIT
package termstyle

import "github.com/liggitt/tabwriter"

// Escape hides value from tabwriter width calculations. Use it for cells
// holding raw escape sequences so columns stay aligned.
func Escape(value string) string {
	if value == "" {
		return value
	}
	esc := string([]byte{tabwriter.Escape})
	return esc + value + esc
}

// Colorize wraps value between an opening code and a closing code, hiding
// both from tabwriter width calculations. Empty codes leave value as is.
func Colorize(value, open, close string) string {
	if value == "" || open == "" {
		return value
	}
	return Escape(open) + value + Escape(close)
}

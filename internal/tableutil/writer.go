// SPDX-License-Identifier: MIT
package tableutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/liggitt/tabwriter"
)

// New creates a tabwriter with colortags' default spacing settings.
// Escaped segments (see termstyle.Escape) are passed through with their
// escape markers removed.
func New(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.StripEscape)
}

// PrintHeaders writes a tab-separated header row unless disabled.
func PrintHeaders(w io.Writer, noHeaders bool, headers ...string) error {
	if noHeaders {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(headers, "\t"))
	return err
}

// SPDX-License-Identifier: MIT
package colortags

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/skaphos/colortags/internal/cliio"
	"github.com/skaphos/colortags/internal/shellgen"
	"github.com/skaphos/colortags/internal/tagtable"
	"github.com/skaphos/colortags/internal/termstyle"
)

var listCmd = &cobra.Command{
	Use:   "list [PATTERN]",
	Short: "List the known color tags",
	Long:  "Lists every tag name with a sample and its escape sequence. PATTERN is a glob matched against tag names, for example 'B*' or '{red,Red}'.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		tags, err := matchTags(pattern)
		if err != nil {
			return err
		}
		noHeaders, _ := cmd.Flags().GetBool("no-headers")
		table := rt.engine.Table()
		reset := table.Code("nocolors")
		rows := make([][]string, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, []string{
				tag.Name,
				termstyle.Colorize("sample", sampleCode(table, tag.Name), reset),
				shellgen.EscapeValue(tag.Code),
			})
		}
		return cliio.WriteTable(cmd.OutOrStdout(), noHeaders, []string{"NAME", "SAMPLE", "CODE"}, rows)
	},
}

func init() {
	addNoHeadersFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}

// matchTags returns the canonical tags whose names match pattern. An empty
// pattern matches everything.
func matchTags(pattern string) ([]tagtable.Tag, error) {
	all := tagtable.Canonical()
	if pattern == "" {
		return all, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tag pattern %q", pattern)
	}
	var matched []tagtable.Tag
	for _, tag := range all {
		ok, err := doublestar.Match(pattern, tag.Name)
		if err != nil {
			return nil, fmt.Errorf("match tag pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, tag)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("no tags match %q", pattern)
	}
	return matched, nil
}

// sampleCode returns the code used to preview a tag in a table. Tags that
// move the cursor or clear output are not previewed.
func sampleCode(table tagtable.Table, name string) string {
	switch name {
	case "clear", "el", "bell", "title":
		return ""
	}
	return table.Code(name)
}

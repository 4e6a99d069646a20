// SPDX-License-Identifier: MIT
package colortags

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

const tagNameColumnWidth = 12

var testCmd = &cobra.Command{
	Use:   "test [PATTERN]",
	Short: "Print a sample of every color tag",
	Long:  "Prints one sample line per tag so the effect of each tag can be checked on this terminal. PATTERN is a glob matched against tag names.",
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
		return runTagTest(cmd, rt, pattern)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTagTest(_ *cobra.Command, rt *runtimeState, pattern string) error {
	tags, err := matchTags(pattern)
	if err != nil {
		return err
	}
	p := rt.printer
	if err := p.EmitLine("Launching full test for ANSI Colors.<default><Default><nocolors> now the text is printed with default value of the terminal..."); err != nil {
		return err
	}
	for _, tag := range tags {
		name := runewidth.FillRight(fmt.Sprintf("'%s'", tag.Name), tagNameColumnWidth)
		line := fmt.Sprintf("The color %s is used to make the following effect : <%s>!! This is a sample text for '%s' !!<default><Default><nocolors>...", name, tag.Name, tag.Name)
		if err := p.EmitLine(line); err != nil {
			return err
		}
	}
	rt.logger.Debug().Int("tags", len(tags)).Msg("tag test complete")
	return nil
}

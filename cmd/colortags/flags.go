// SPDX-License-Identifier: MIT
package colortags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const noHeadersUsage = "do not print table headers"

func addNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("no-headers", false, noHeadersUsage)
}

func addDelimiterFlags(cmd *cobra.Command) {
	cmd.Flags().String("left", "", "left tag delimiter (default from config, usually \"<\")")
	cmd.Flags().String("right", "", "right tag delimiter (default from config, usually \">\")")
}

// resetFlags restores every flag in the command tree to its default so
// repeated executions in one process start clean.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

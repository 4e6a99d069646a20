// SPDX-License-Identifier: MIT
package colortags

import "github.com/spf13/cobra"

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the screen, the current line, or reset all effects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		line, _ := cmd.Flags().GetBool("line")
		reset, _ := cmd.Flags().GetBool("reset")
		switch {
		case line:
			rt.printer.ClearLine()
		case reset:
			rt.printer.ResetAll()
		default:
			rt.printer.ClearScreen()
		}
		return nil
	},
}

func init() {
	clearCmd.Flags().Bool("line", false, "clear the current line only")
	clearCmd.Flags().Bool("reset", false, "reset colors and effects instead of clearing")
	clearCmd.MarkFlagsMutuallyExclusive("line", "reset")
	rootCmd.AddCommand(clearCmd)
}

// SPDX-License-Identifier: MIT
package colortags

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skaphos/colortags/internal/markup"
	"github.com/skaphos/colortags/internal/termstyle"
)

var renderCmd = &cobra.Command{
	Use:   "render [TEXT...]",
	Short: "Print text with color tags replaced",
	Long: "Renders each argument, joined by the separator and followed by the line end. " +
		"Without arguments, renders standard input line by line.",
	Example: `  colortags render "<red>ERROR<reset> disk full"
  colortags render --erase "<b>plain<B> text"
  echo "<green>ok<reset>" | colortags render --ANSI`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		opts, err := renderOptions(cmd, rt)
		if err != nil {
			return err
		}
		printer := termstyle.New(rt.engine, cmd.OutOrStdout(), opts)
		if len(args) > 0 {
			items := make([]any, len(args))
			for i, arg := range args {
				items[i] = arg
			}
			return printer.EmitLine(items...)
		}
		return renderStream(cmd, printer)
	},
}

func init() {
	renderCmd.Flags().Bool("erase", false, "strip tags instead of substituting them")
	renderCmd.Flags().String("sep", "", "separator between arguments (default from config, usually a space)")
	renderCmd.Flags().BoolP("no-newline", "n", false, "do not print the trailing line end")
	renderCmd.Flags().Bool("no-flush", false, "do not flush output after each write")
	addDelimiterFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

func renderOptions(cmd *cobra.Command, rt *runtimeState) (termstyle.Options, error) {
	opts := printOptions(rt.cfg)
	flags := cmd.Flags()
	if flags.Changed("erase") {
		erase, _ := flags.GetBool("erase")
		opts.Erase = erase
	}
	if flags.Changed("sep") {
		opts.Separator, _ = flags.GetString("sep")
		opts.NoSeparator = opts.Separator == ""
	}
	if noNewline, _ := flags.GetBool("no-newline"); noNewline {
		opts.LineEnd = ""
		opts.NoLineEnd = true
	}
	if flags.Changed("no-flush") {
		opts.NoFlush, _ = flags.GetBool("no-flush")
	}
	left, _ := flags.GetString("left")
	right, _ := flags.GetString("right")
	if flags.Changed("left") || flags.Changed("right") {
		if left == "" {
			left = opts.Delimiters.Left
		}
		if right == "" {
			right = opts.Delimiters.Right
		}
		if left == right {
			return opts, fmt.Errorf("left and right delimiters must differ (both %q)", left)
		}
		opts.Delimiters = markup.Delimiters{Left: left, Right: right}
	}
	return opts, nil
}

func renderStream(cmd *cobra.Command, printer *termstyle.Printer) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := printer.EmitLine(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

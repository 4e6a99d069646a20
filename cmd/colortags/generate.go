// SPDX-License-Identifier: MIT
package colortags

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skaphos/colortags/internal/cliio"
	"github.com/skaphos/colortags/internal/shellgen"
	"github.com/skaphos/colortags/internal/tagtable"
	"github.com/skaphos/colortags/internal/termstyle"
)

type generateOptions struct {
	file string
	yes  bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print all color tags as shell export statements",
	Long: "Writes a profile of 'export NAME=\"VALUE\"' lines, one per tag, that other shell scripts can source. " +
		"Values always hold the real escape sequences, whatever the current terminal supports.",
	Example: `  colortags generate > ~/.color.sh
  colortags generate --file ~/.color.sh`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		yes, _ := cmd.Flags().GetBool("yes")
		return runGenerate(cmd, rt, generateOptions{file: file, yes: yes})
	},
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "write the profile to FILE instead of standard output")
	generateCmd.Flags().BoolP("yes", "y", false, "overwrite an existing file without asking")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, rt *runtimeState, opts generateOptions) error {
	if opts.file == "" {
		opts.file = rt.cfg.Generate.File
	}
	tags := tagtable.Canonical()
	if opts.file == "" {
		return shellgen.Write(cmd.OutOrStdout(), tags)
	}

	if _, err := os.Stat(opts.file); err == nil && !opts.yes {
		ok, err := confirmOverwrite(cmd, opts.file)
		if err != nil {
			return err
		}
		if !ok {
			infof(cmd, "Not overwriting %s", opts.file)
			raiseExitCode(exitFailure)
			return nil
		}
	}

	progress := termstyle.New(rt.engine, cmd.ErrOrStderr(), printOptions(rt.cfg))
	if !flagQuiet {
		_ = progress.EmitLine(fmt.Sprintf("<green>Creating %s<reset> with %d color tags...", opts.file, len(tags)))
	}
	if err := writeProfile(opts.file, tags); err != nil {
		return err
	}
	rt.logger.Info().Str("file", opts.file).Int("tags", len(tags)).Msg("shell profile written")
	if !flagQuiet {
		_ = progress.EmitLine(fmt.Sprintf("<green>The file %s has been created.<reset>", opts.file))
	}
	return nil
}

// confirmOverwrite asks before replacing path. Without an interactive
// stdin there is nobody to ask, so the file is replaced.
func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isTerminalFD(in.Fd()) {
		return true, nil
	}
	return cliio.PromptYesNo(cmd.ErrOrStderr(), in, fmt.Sprintf("Overwrite %s? [y/N]: ", path))
}

func writeProfile(path string, tags []tagtable.Tag) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return shellgen.Write(f, tags)
}

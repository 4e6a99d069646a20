// SPDX-License-Identifier: MIT

// Package colortags contains the Cobra command tree for the colortags CLI.
package colortags

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skaphos/colortags/internal/config"
	"github.com/skaphos/colortags/internal/logging"
	"github.com/skaphos/colortags/internal/markup"
	"github.com/skaphos/colortags/internal/support"
	"github.com/skaphos/colortags/internal/tagtable"
	"github.com/skaphos/colortags/internal/termstyle"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitError   = 2
)

var (
	// Global flags
	flagVerbose int
	flagQuiet   bool
	flagConfig  string
	flagANSI    bool
	flagNoANSI  bool
	// Root actions, also available as subcommands.
	flagTest     bool
	flagGenerate bool
	flagFile     string
	// isTerminalFD is overridable in tests.
	isTerminalFD = support.IsTerminal
	// exitFunc is overridable in tests.
	exitFunc = os.Exit
	// state holds the per-execution runtime.
	state = &runtimeState{}
)

// taggedLongAnnotation stores the tagged form of a command's Long text so
// help can be rendered once the tag table is known.
const taggedLongAnnotation = "colortags/tagged-long"

const rootLong = `<green>ANSI color tags<reset> utility and <blue>script<reset>.

Tag names such as <red>red<reset> or <Byellow>Byellow<reset>, written between angle brackets, are
replaced by their ANSI escape sequences. Unknown tags are kept verbatim, and every tag is
stripped when the output does not support colors.

<b>Naming conventions:<reset>
 * for the eight colors black, red, green, yellow, blue, magenta, cyan, white:
   * the lowercase name is the color <b>with bold<B> (example <yellow>'yellow'<reset>),
   * the name starting with 'B' is the color <b>without bold<B> (example <Byellow>'Byellow'<reset>),
   * the capitalized name is the background color (example <Yellow>'Yellow'<reset>);
 * for the special effects (blink, italic, bold (b), underline (u), negative),
   <u>not always supported<U>:
   * the lowercase name turns the effect <u>on<U> (example 'u' to <u>underline<U>),
   * the capitalized name turns the effect <u>off<U> (example 'U');
 * the other effects (nocolors, default, Default, clear, el) are immediate.

Use the generated profile from other shell scripts with <b>. ~/.color.sh<reset>`

type runtimeState struct {
	once     sync.Once
	err      error
	cfg      *config.Config
	logger   zerolog.Logger
	engine   *markup.Engine
	printer  *termstyle.Printer
	exitCode int
}

var rootCmd = &cobra.Command{
	Use:           "colortags",
	Short:         "Render ANSI color tags in text",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		switch {
		case flagGenerate:
			return runGenerate(cmd, rt, generateOptions{file: flagFile})
		case flagTest:
			return runTagTest(cmd, rt, "")
		}
		if err := cmd.Help(); err != nil {
			return err
		}
		raiseExitCode(exitFailure)
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.Annotations = map[string]string{taggedLongAnnotation: rootLong}
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase output verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "override config file path")
	rootCmd.PersistentFlags().BoolVar(&flagANSI, "ANSI", false, "force ANSI escape codes on, even when output is not a terminal")
	rootCmd.PersistentFlags().BoolVar(&flagNoANSI, "noANSI", false, "disable ANSI escape codes")
	rootCmd.Flags().BoolVarP(&flagTest, "test", "t", false, "print a sample of every color tag")
	rootCmd.Flags().BoolVarP(&flagGenerate, "generate", "g", false, "print all color tags as shell export statements")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "with --generate, write the export statements to FILE")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderLong(cmd)
		defaultHelp(cmd, args)
	})
}

// Execute runs the root command.
func Execute() {
	exitFunc(ExecuteWithExitCode())
}

// ExecuteWithExitCode runs the root command and returns a shell-friendly exit code.
func ExecuteWithExitCode() int {
	resetState()
	if err := rootCmd.Execute(); err != nil {
		writeError(rootCmd.ErrOrStderr(), err)
		raiseExitCode(exitError)
	}
	return state.exitCode
}

func resetState() {
	state = &runtimeState{}
	resetFlags(rootCmd)
}

func raiseExitCode(code int) {
	// Keep the highest severity: 0 success, 1 failure, 2 error.
	if code > state.exitCode {
		state.exitCode = code
	}
}

// ensureRuntime loads config, detects support, and builds the tag table
// exactly once per execution.
func ensureRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt := state
	rt.once.Do(func() {
		rt.err = initRuntime(cmd, rt)
	})
	return rt, rt.err
}

func initRuntime(cmd *cobra.Command, rt *runtimeState) error {
	rt.logger = logging.New(cmd.ErrOrStderr(), flagVerbose, flagQuiet, writerIsTerminal(cmd.ErrOrStderr()))

	cfgPath, err := config.ResolveConfigPath(flagConfig, "")
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.logger.Debug().Str("path", cfgPath).Msg("config loaded")

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	mode = support.ModeFromFlags(mode, flagANSI, flagNoANSI)
	supported := support.Detect(support.Options{
		Mode:       mode,
		Out:        cmd.OutOrStdout(),
		IsTerminal: isTerminalFD,
		Logger:     rt.logger,
	})
	rt.logger.Debug().Str("mode", string(mode)).Bool("supported", supported).Msg("ansi support detected")

	rt.engine = markup.New(tagtable.Build(supported), cfg.MarkupDelimiters())
	rt.printer = termstyle.New(rt.engine, cmd.OutOrStdout(), printOptions(cfg))
	return nil
}

func printOptions(cfg *config.Config) termstyle.Options {
	return termstyle.Options{
		Delimiters:  cfg.MarkupDelimiters(),
		Separator:   cfg.Print.Separator,
		LineEnd:     cfg.Print.LineEnd,
		NoSeparator: cfg.Print.Separator == "",
		NoLineEnd:   cfg.Print.LineEnd == "",
		Erase:       cfg.Print.Erase,
		NoFlush:     cfg.Print.NoFlush,
	}
}

// renderLong replaces cmd.Long with its rendered tagged form. Without a
// runtime (for example a broken config) tags are stripped.
func renderLong(cmd *cobra.Command) {
	tagged, ok := cmd.Annotations[taggedLongAnnotation]
	if !ok {
		return
	}
	engine := markup.New(tagtable.Build(false), markup.DefaultDelimiters)
	if rt, err := ensureRuntime(cmd); err == nil {
		engine = markup.New(rt.engine.Table(), markup.DefaultDelimiters)
	}
	cmd.Long = engine.Sprint(tagged)
}

func writeError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, "Error:", err)
}

func writerIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminalFD(file.Fd())
}

func infof(cmd *cobra.Command, format string, args ...any) {
	if flagQuiet {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

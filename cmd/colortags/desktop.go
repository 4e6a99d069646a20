// SPDX-License-Identifier: MIT
package colortags

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skaphos/colortags/internal/desktop"
)

// newDesktopClient is overridable in tests.
var newDesktopClient = func(rt *runtimeState) *desktop.Client {
	client := desktop.NewClient(rt.logger)
	client.NotifyProgram = rt.cfg.Desktop.NotifyProgram
	client.TitleProgram = rt.cfg.Desktop.TitleProgram
	if rt.cfg.Desktop.TimeoutSeconds > 0 {
		client.Timeout = time.Duration(rt.cfg.Desktop.TimeoutSeconds) * time.Second
	}
	return client
}

var notifyCmd = &cobra.Command{
	Use:   "notify MESSAGE...",
	Short: "Send a desktop notification",
	Long:  "Sends a desktop notification through notify-send (or the configured program). Exits 1 when the notification could not be sent.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		summary, _ := cmd.Flags().GetString("summary")
		icon, _ := cmd.Flags().GetString("icon")
		n := desktop.Notification{
			Summary: summary,
			Body:    rt.engine.Erase(strings.Join(args, " ")),
			Icon:    icon,
		}
		if err := newDesktopClient(rt).Notify(cmd.Context(), n); err != nil {
			raiseExitCode(exitFailure)
		}
		return nil
	},
}

var titleCmd = &cobra.Command{
	Use:   "title TEXT...",
	Short: "Set the terminal title",
	Long:  "Sets the terminal title through xtitle (or the configured program), falling back to the <title> and <bell> escape sequences. Exits 1 when both fail.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := ensureRuntime(cmd)
		if err != nil {
			return err
		}
		if err := newDesktopClient(rt).SetTitle(cmd.Context(), rt.printer, strings.Join(args, " ")); err != nil {
			raiseExitCode(exitFailure)
		}
		return nil
	},
}

func init() {
	notifyCmd.Flags().StringP("summary", "s", "", "notification summary (default \""+desktop.DefaultSummary+"\")")
	notifyCmd.Flags().StringP("icon", "i", "", "icon image path")
	rootCmd.AddCommand(notifyCmd, titleCmd)
}

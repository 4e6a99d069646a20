// SPDX-License-Identifier: MIT
package colortags

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skaphos/colortags/internal/config"
	"github.com/skaphos/colortags/internal/desktop"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// runCLI executes the command tree with args against in-memory streams and
// a config path that does not exist.
func runCLI(t *testing.T, stdin io.Reader, args ...string) cliResult {
	t.Helper()
	return runCLIWithConfig(t, filepath.Join(t.TempDir(), "config.yaml"), stdin, args...)
}

// runCLIWithConfig is runCLI with COLORTAGS_CONFIG pointing at cfgPath.
func runCLIWithConfig(t *testing.T, cfgPath string, stdin io.Reader, args ...string) cliResult {
	t.Helper()
	t.Setenv(config.EnvConfig, cfgPath)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}()
	code := ExecuteWithExitCode()
	return cliResult{stdout: out.String(), stderr: errOut.String(), code: code}
}

type fakeLauncher struct {
	err   error
	calls []string
}

func (f *fakeLauncher) Launch(_ context.Context, bin string, args ...string) error {
	f.calls = append(f.calls, bin+" "+strings.Join(args, " "))
	return f.err
}

func withFakeLauncher(t *testing.T, launcher *fakeLauncher) {
	t.Helper()
	prev := newDesktopClient
	newDesktopClient = func(rt *runtimeState) *desktop.Client {
		client := prev(rt)
		client.Launcher = launcher
		return client
	}
	t.Cleanup(func() { newDesktopClient = prev })
}

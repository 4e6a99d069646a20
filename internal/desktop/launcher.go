// SPDX-License-Identifier: MIT
package desktop

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Launcher starts external programs without waiting for them to finish.
// Implementations must give up once ctx is done. This interface allows
// mocking in tests.
type Launcher interface {
	Launch(ctx context.Context, bin string, args ...string) error
}

// ExecLauncher is the default Launcher. It resolves bin on PATH, starts
// it, and reaps it in the background.
type ExecLauncher struct{}

// Launch starts bin with args. ctx bounds resolving and starting the
// program, not its run: once started, the program outlives ctx. When ctx
// ends first Launch returns its error, and a start that completes later
// is still reaped.
func (ExecLauncher) Launch(ctx context.Context, bin string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	started := make(chan error, 1)
	go func() { started <- start(bin, args) }()
	select {
	case err := <-started:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", bin, ctx.Err())
	}
}

func start(bin string, args []string) error {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("%s: not found: %w", bin, err)
	}
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

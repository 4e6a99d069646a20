// SPDX-License-Identifier: MIT
package desktop_test

import (
	"context"
	"fmt"
	"strings"
)

// MockLauncher implements desktop.Launcher for testing.
type MockLauncher struct {
	// Errors maps binary names to the error their launch returns.
	Errors map[string]error
	Calls  []string
}

func (m *MockLauncher) Launch(ctx context.Context, bin string, args ...string) error {
	if _, ok := ctx.Deadline(); !ok {
		return fmt.Errorf("launch of %s without a deadline", bin)
	}
	m.Calls = append(m.Calls, strings.TrimSpace(bin+" "+strings.Join(args, " ")))
	return m.Errors[bin]
}

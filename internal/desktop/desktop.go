// SPDX-License-Identifier: MIT

// Package desktop sends desktop notifications and sets the terminal
// title by shelling out to helper programs.
package desktop

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/skaphos/colortags/internal/termstyle"
)

const (
	// DefaultNotifyProgram is the freedesktop notification client.
	DefaultNotifyProgram = "notify-send"
	// DefaultTitleProgram sets the title of X terminals.
	DefaultTitleProgram = "xtitle"
	// DefaultSummary is used when a notification has no summary.
	DefaultSummary = "Notification sent by colortags"
	// DefaultTimeout bounds starting each helper program.
	DefaultTimeout = 5 * time.Second
)

// Notification is a desktop notification request.
type Notification struct {
	Summary string
	Body    string
	// Icon is a path to an image; relative paths resolve against the
	// working directory.
	Icon string
}

// Client wraps the helper programs.
type Client struct {
	Launcher      Launcher
	NotifyProgram string
	TitleProgram  string
	// Timeout bounds finding and starting a helper program. Helpers are
	// not waited for, so it never limits how long they run. A launch that
	// times out counts as a failure.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewClient returns a Client with the default programs.
func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		Launcher:      ExecLauncher{},
		NotifyProgram: DefaultNotifyProgram,
		TitleProgram:  DefaultTitleProgram,
		Timeout:       DefaultTimeout,
		Logger:        logger,
	}
}

// Notify sends n through the notification program.
func (c *Client) Notify(ctx context.Context, n Notification) error {
	summary := n.Summary
	if summary == "" {
		summary = DefaultSummary
	}
	args := []string{summary, n.Body}
	if n.Icon != "" {
		icon, err := filepath.Abs(n.Icon)
		if err != nil {
			return fmt.Errorf("resolve icon %s: %w", n.Icon, err)
		}
		args = append(args, "--icon="+icon)
	}
	if err := c.launch(ctx, c.notifyProgram(), args...); err != nil {
		c.Logger.Info().Err(err).Msg("notification not sent")
		return err
	}
	c.Logger.Info().Str("summary", summary).Str("body", n.Body).Str("icon", n.Icon).Msg("notification sent")
	return nil
}

// SetTitle sets the terminal title through the title program, falling
// back to the title escape sequence written by p.
func (c *Client) SetTitle(ctx context.Context, p *termstyle.Printer, title string) error {
	err := c.launch(ctx, c.titleProgram(), title)
	if err == nil {
		c.Logger.Info().Str("title", title).Msg("terminal title set")
		return nil
	}
	c.Logger.Info().Err(err).Msg("title program unavailable; using escape sequence")
	d := p.Options().Delimiters
	if werr := p.Emit(d.Left + "title" + d.Right + title + d.Left + "bell" + d.Right); werr != nil {
		c.Logger.Info().Err(werr).Msg("title escape sequence failed")
		return fmt.Errorf("set title: %w", werr)
	}
	return nil
}

func (c *Client) launch(ctx context.Context, bin string, args ...string) error {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	launcher := c.Launcher
	if launcher == nil {
		launcher = ExecLauncher{}
	}
	return launcher.Launch(ctx, bin, args...)
}

func (c *Client) notifyProgram() string {
	if c.NotifyProgram == "" {
		return DefaultNotifyProgram
	}
	return c.NotifyProgram
}

func (c *Client) titleProgram() string {
	if c.TitleProgram == "" {
		return DefaultTitleProgram
	}
	return c.TitleProgram
}

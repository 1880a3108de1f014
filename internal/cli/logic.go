package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/samesize/internal/logger"
	"github.com/idelchi/samesize/internal/samesize"
)

// isTerminal reports whether w is backed by a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor resolves the color mode against the output writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(w)
	}
}

func logic(cmd *cobra.Command, options samesize.Options) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	colorize := useColor(options.Color, out)

	level := "info"
	if options.Debug {
		level = "debug"
	}

	log := logger.New(logger.Options{Level: level, Color: colorize, Writer: out})
	defer log.Sync() //nolint:errcheck // Sync on a terminal returns spurious errors

	options.Log = log.SugaredLogger

	enableProgress := !options.NoProgress &&
		!options.Debug &&
		isTerminal(errOut)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(errOut, "\033[?25l")
		defer fmt.Fprint(errOut, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(errOut, "\r\033[2K%s\r", msg)
		}
	}

	result, err := samesize.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(errOut, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if err := PrintText(result, out, colorize); err != nil {
		return err
	}

	if options.Summary {
		return PrintSummary(result, out)
	}

	return nil
}

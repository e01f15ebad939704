// Package controller provides output adapters for displaying rewrite results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/lograft/internal/model"
)

// UI defines how the workflow reports its results.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplaySource writes the rewritten source of a file.
	DisplaySource(ctx context.Context, report m.Report) error
	// DisplayDiff writes a unified diff for a changed file.
	DisplayDiff(ctx context.Context, path m.Path, diff string) error
	// DisplaySites lists every intrinsic call found.
	DisplaySites(ctx context.Context, reports []m.Report) error
	// DisplaySummary reports how many files and calls were rewritten.
	DisplaySummary(ctx context.Context, reports []m.Report) error
}

// NewUI returns the UI for cmd; tty enables styled output.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewSimpleUI(cmd, WithStyles(NewStyles()))
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

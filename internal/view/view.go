// Package view implements the classic, non-interactive tree listing.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/artpar/arbor/internal/format"
	"github.com/artpar/arbor/internal/git"
	"github.com/artpar/arbor/internal/icons"
	"github.com/artpar/arbor/internal/scan"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	dirStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Options mirrors the classic-view flags; scan behavior rides on
// scan.Options.
type Options struct {
	Scan  scan.Options
	Icons bool
}

// Run scans root and prints the whole subtree with a trailing
// directory/file summary.
func Run(w io.Writer, root string, opts Options, log zerolog.Logger) error {
	entries, err := scan.Collect(root, opts.Scan, log)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, rootStyle.Render(root)); err != nil {
		// Downstream closed the pipe; nothing useful left to do.
		return nil
	}
	dirs, files := Render(w, entries, opts)
	fmt.Fprintf(w, "\n%d directories, %d files\n", dirs, files)
	return nil
}

// Render writes one row per entry and returns the directory and file
// counts.
func Render(w io.Writer, entries []scan.Entry, opts Options) (dirs, files int) {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, renderRow(e, opts)); err != nil {
			return dirs, files
		}
		if e.IsDir {
			dirs++
		} else {
			files++
		}
	}
	return dirs, files
}

func renderRow(e scan.Entry, opts Options) string {
	var b strings.Builder

	if opts.Scan.GitStatus {
		if e.GitStatus == git.StatusNone {
			b.WriteString("  ")
		} else {
			marker := lipgloss.NewStyle().Foreground(e.GitStatus.Color())
			b.WriteString(marker.Render(string(e.GitStatus.Rune())))
			b.WriteByte(' ')
		}
	}

	if opts.Scan.Permissions {
		perms := e.Permissions
		if perms == "" {
			perms = format.PermissionsPlaceholder
		}
		b.WriteString(dimStyle.Render(perms))
		b.WriteByte(' ')
	}

	b.WriteString(strings.Repeat("    ", e.Depth-1))
	b.WriteString("└── ")

	if opts.Icons {
		icon := icons.ForPath(e.Path, e.IsDir)
		b.WriteString(lipgloss.NewStyle().Foreground(icon.Color).Render(icon.Glyph))
		b.WriteByte(' ')
	}

	if e.IsDir {
		b.WriteString(dirStyle.Render(e.Name))
	} else {
		b.WriteString(e.Name)
		if opts.Scan.Size && e.Size != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", format.Size(*e.Size))))
		}
	}
	return b.String()
}

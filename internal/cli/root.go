// Package cli wires the cobra commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/artpar/arbor/internal/config"
	"github.com/artpar/arbor/internal/logging"
	"github.com/artpar/arbor/internal/scan"
	"github.com/artpar/arbor/internal/view"
)

// NewRootCommand creates the root command: the classic tree view, with
// the interactive explorer as a subcommand.
func NewRootCommand(version string) *cobra.Command {
	var (
		colorWhen   string
		level       int
		dirsOnly    bool
		showSize    bool
		showAll     bool
		gitignore   bool
		showIcons   bool
		permissions bool
		gitStatus   bool
	)

	cmd := &cobra.Command{
		Use:     "arbor [path]",
		Short:   "A minimalist directory tree viewer",
		Long:    "Arbor prints a directory subtree as a colored tree, or explores it interactively.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			if err := applyColorChoice(colorWhen); err != nil {
				return err
			}

			cfg := config.Load()
			if !cmd.Flags().Changed("icons") {
				showIcons = cfg.Icons
			}
			if !cmd.Flags().Changed("gitignore") {
				gitignore = cfg.Gitignore
			}

			opts := view.Options{
				Scan: scan.Options{
					ShowHidden:    showAll,
					RespectIgnore: gitignore,
					DirsOnly:      dirsOnly,
					MaxDepth:      level,
					Size:          showSize,
					Permissions:   permissions,
					GitStatus:     gitStatus,
				},
				Icons: showIcons,
			}
			return view.Run(cmd.OutOrStdout(), root, opts, logging.New())
		},
	}

	cmd.Flags().StringVar(&colorWhen, "color", "auto", "when to use color output: always, auto, or never")
	cmd.Flags().IntVarP(&level, "level", "L", 0, "maximum depth to descend (0 = unlimited)")
	cmd.Flags().BoolVarP(&dirsOnly, "dirs-only", "d", false, "list directories only")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "display file sizes")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "show all files, including hidden ones")
	cmd.Flags().BoolVarP(&gitignore, "gitignore", "g", false, "respect .gitignore rules")
	cmd.Flags().BoolVar(&showIcons, "icons", false, "display file-specific icons (requires a Nerd Font)")
	cmd.Flags().BoolVarP(&permissions, "permissions", "p", false, "display permission strings")
	cmd.Flags().BoolVarP(&gitStatus, "git-status", "G", false, "display git status markers")

	cmd.AddCommand(NewInteractiveCommand())
	return cmd
}

// resolveRoot validates the path argument before any session state
// exists; a missing or non-directory root never reaches the tree.
func resolveRoot(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return abs, nil
}

func applyColorChoice(when string) error {
	switch when {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "auto":
		// lipgloss detects terminal capability on its own.
	default:
		return fmt.Errorf("invalid --color value %q (want always, auto, or never)", when)
	}
	return nil
}

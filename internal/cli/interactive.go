package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/artpar/arbor/internal/config"
	"github.com/artpar/arbor/internal/logging"
	"github.com/artpar/arbor/internal/scan"
	"github.com/artpar/arbor/internal/tui/components"
	"github.com/artpar/arbor/internal/tui/views"
)

// NewInteractiveCommand creates the interactive explorer command.
func NewInteractiveCommand() *cobra.Command {
	var (
		showAll     bool
		gitignore   bool
		showIcons   bool
		showSize    bool
		permissions bool
		gitStatus   bool
		expandLevel int
	)

	cmd := &cobra.Command{
		Use:     "interactive [path]",
		Aliases: []string{"i"},
		Short:   "Explore a directory tree interactively",
		Long: `Open a full-screen explorer over the directory tree.

Navigate with j/k, expand and collapse directories with enter or h/l,
and press enter on a file to open it in $EDITOR; the explorer resumes
when the editor exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			cfg := config.Load()
			if !cmd.Flags().Changed("icons") {
				showIcons = cfg.Icons
			}
			if !cmd.Flags().Changed("gitignore") {
				gitignore = cfg.Gitignore
			}
			if !cmd.Flags().Changed("expand-level") {
				expandLevel = cfg.ExpandLevel
			}
			if cfg.Editor != "" && os.Getenv("EDITOR") == "" {
				os.Setenv("EDITOR", cfg.Editor)
			}

			log := logging.New()
			master, err := scan.Collect(root, scan.Options{
				ShowHidden:    showAll,
				RespectIgnore: gitignore,
				ExpandDepth:   expandLevel,
				Size:          showSize,
				Permissions:   permissions,
				GitStatus:     gitStatus,
			}, log)
			if err != nil {
				return err
			}

			columns := components.Columns{
				Size:        showSize,
				Permissions: permissions,
				GitStatus:   gitStatus,
				Icons:       showIcons,
			}
			model := views.NewExplorerView(root, master, columns, log)

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running explorer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "show all files, including hidden ones")
	cmd.Flags().BoolVarP(&gitignore, "gitignore", "g", false, "respect .gitignore rules")
	cmd.Flags().BoolVar(&showIcons, "icons", false, "display file-specific icons (requires a Nerd Font)")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "display file sizes")
	cmd.Flags().BoolVarP(&permissions, "permissions", "p", false, "display permission strings")
	cmd.Flags().BoolVarP(&gitStatus, "git-status", "G", false, "display git status markers")
	cmd.Flags().IntVar(&expandLevel, "expand-level", 0, "initial depth to expand the tree")

	return cmd
}

// Package views contains the top-level explorer model.
package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/artpar/arbor/internal/editor"
	"github.com/artpar/arbor/internal/scan"
	"github.com/artpar/arbor/internal/tui"
	"github.com/artpar/arbor/internal/tui/components"
)

// editorFinishedMsg arrives when a suspended editor process exits.
type editorFinishedMsg struct {
	path string
	err  error
}

// ExplorerView is the interactive session: a header with the scan
// root, the tree window, and a key-help footer.
//
// The session is a single-threaded read/dispatch/render loop. Opening
// a file suspends the whole terminal UI, runs the editor to
// completion on this same loop, and resumes browsing with a full
// redraw; editor failures are logged and otherwise ignored. Quitting
// is the only other way out, and the runtime restores the terminal on
// every exit path, including errors.
type ExplorerView struct {
	root   string
	tree   *components.ExplorerTree
	keys   tui.KeyMap
	styles tui.Styles
	log    zerolog.Logger

	width  int
	height int
	status string
}

// NewExplorerView builds the session model from a collected master
// list.
func NewExplorerView(root string, master []scan.Entry, columns components.Columns, log zerolog.Logger) *ExplorerView {
	return &ExplorerView{
		root:   root,
		tree:   components.NewExplorerTree(master, columns),
		keys:   tui.DefaultKeyMap(),
		styles: tui.DefaultStyles(),
		log:    log,
	}
}

// Init implements tea.Model.
func (v *ExplorerView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v *ExplorerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.tree.SetSize(msg.Width, v.bodyHeight())
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Quit) {
			return v, tea.Quit
		}
		v.status = ""
		updated, cmd := v.tree.Update(msg)
		v.tree = updated.(*components.ExplorerTree)
		return v, cmd

	case components.OpenFileMsg:
		path := msg.Path
		cmd := editor.Command(path)
		v.log.Info().Str("path", path).Str("editor", cmd.Path).Msg("suspending for editor")
		return v, tea.ExecProcess(cmd, func(err error) tea.Msg {
			return editorFinishedMsg{path: path, err: err}
		})

	case editorFinishedMsg:
		// The session resumes regardless of how the editor fared.
		if msg.err != nil {
			v.log.Warn().Err(msg.err).Str("path", msg.path).Msg("editor exited with error")
		}
		return v, nil

	case components.CopiedMsg:
		v.status = fmt.Sprintf("copied %s", filepath.Base(msg.Path))
		return v, nil
	}

	updated, cmd := v.tree.Update(msg)
	v.tree = updated.(*components.ExplorerTree)
	return v, cmd
}

// View implements tea.Model.
func (v *ExplorerView) View() string {
	header := v.styles.Header.Width(v.width).Render(tui.Truncate(v.root, max(v.width-2, 0)))

	body := v.tree.View()
	if gap := v.bodyHeight() - lipgloss.Height(body); gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	return header + "\n" + body + "\n" + v.footerView()
}

func (v *ExplorerView) footerView() string {
	help := "j/k: move | enter: toggle/open | h/l: collapse/expand | y: copy | q: quit"
	if v.status != "" {
		help = v.status + " | " + help
	}
	return v.styles.Footer.Width(v.width).Render(tui.Truncate(help, max(v.width-2, 0)))
}

// bodyHeight is the tree window: total height minus header and footer.
func (v *ExplorerView) bodyHeight() int {
	h := v.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/arbor/internal/format"
	"github.com/artpar/arbor/internal/git"
	"github.com/artpar/arbor/internal/icons"
	"github.com/artpar/arbor/internal/scan"
	"github.com/artpar/arbor/internal/tui"
)

// OpenFileMsg is sent when the user activates a file entry.
type OpenFileMsg struct {
	Path string
}

// CopiedMsg is sent after the selected path was copied.
type CopiedMsg struct {
	Path string
}

// Columns controls the optional row decorations.
type Columns struct {
	Size        bool
	Permissions bool
	GitStatus   bool
	Icons       bool
}

// ExplorerTree renders the directory tree and owns its navigation
// state: the master list built once by the scan, the derived visible
// list, and the cursor into it. The master list mutates only through
// expand-flag toggles; the visible list is replaced wholesale after
// every toggle, never edited in place.
type ExplorerTree struct {
	master  []scan.Entry
	visible []scan.Entry

	cursor int // -1 when the visible list is empty
	offset int
	width  int
	height int

	columns Columns
	keys    tui.KeyMap
	styles  tui.Styles
}

// NewExplorerTree builds the component from a collected master list.
func NewExplorerTree(master []scan.Entry, columns Columns) *ExplorerTree {
	t := &ExplorerTree{
		master:  master,
		columns: columns,
		keys:    tui.DefaultKeyMap(),
		styles:  tui.DefaultStyles(),
	}
	t.visible = VisibleEntries(t.master)
	t.cursor = -1
	if len(t.visible) > 0 {
		t.cursor = 0
	}
	return t
}

// Init implements tui.Component.
func (t *ExplorerTree) Init() tea.Cmd {
	return nil
}

// Update implements tui.Component.
func (t *ExplorerTree) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *ExplorerTree) handleKey(msg tea.KeyMsg) (tui.Component, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.Down):
		t.move(1)

	case key.Matches(msg, t.keys.Up):
		t.move(-1)

	case key.Matches(msg, t.keys.Select):
		entry, ok := t.Selected()
		if !ok {
			return t, nil
		}
		if entry.IsDir {
			t.toggleSelected()
			return t, nil
		}
		path := entry.Path
		return t, func() tea.Msg {
			return OpenFileMsg{Path: path}
		}

	case key.Matches(msg, t.keys.Expand):
		if entry, ok := t.Selected(); ok && entry.IsDir && !t.expanded(entry.Path) {
			t.toggleSelected()
		}

	case key.Matches(msg, t.keys.Collapse):
		if entry, ok := t.Selected(); ok && entry.IsDir && t.expanded(entry.Path) {
			t.toggleSelected()
		}

	case key.Matches(msg, t.keys.Copy):
		if entry, ok := t.Selected(); ok {
			path := entry.Path
			return t, func() tea.Msg {
				if err := clipboard.WriteAll(path); err != nil {
					return nil
				}
				return CopiedMsg{Path: path}
			}
		}
	}
	return t, nil
}

func (t *ExplorerTree) move(delta int) {
	t.cursor = WrapCursor(t.cursor, delta, len(t.visible))
	t.offset = AdjustOffset(t.cursor, t.offset, t.height)
}

// toggleSelected flips the selected directory, rebuilds the visible
// list, and re-anchors the cursor: same path if it survived, clamped
// ordinal position otherwise.
func (t *ExplorerTree) toggleSelected() {
	entry, ok := t.Selected()
	if !ok {
		return
	}
	if !Toggle(t.master, entry.Path) {
		return
	}
	t.visible = VisibleEntries(t.master)
	t.cursor = Reanchor(t.visible, entry.Path, t.cursor)
	t.offset = AdjustOffset(t.cursor, t.offset, t.height)
}

func (t *ExplorerTree) expanded(path string) bool {
	for i := range t.master {
		if t.master[i].Path == path {
			return t.master[i].IsExpanded
		}
	}
	return false
}

// Selected returns the entry under the cursor.
func (t *ExplorerTree) Selected() (scan.Entry, bool) {
	if t.cursor < 0 || t.cursor >= len(t.visible) {
		return scan.Entry{}, false
	}
	return t.visible[t.cursor], true
}

// Cursor returns the current cursor index, -1 when undefined.
func (t *ExplorerTree) Cursor() int {
	return t.cursor
}

// VisibleLen returns the length of the current visible list.
func (t *ExplorerTree) VisibleLen() int {
	return len(t.visible)
}

// SetSize implements tui.Component.
func (t *ExplorerTree) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.offset = AdjustOffset(t.cursor, t.offset, t.height)
}

// View implements tui.Component.
func (t *ExplorerTree) View() string {
	if len(t.visible) == 0 {
		return t.styles.Dim.Render("  (empty)")
	}

	height := t.height
	if height < 1 {
		height = len(t.visible)
	}
	end := t.offset + height
	if end > len(t.visible) {
		end = len(t.visible)
	}

	var b strings.Builder
	for i := t.offset; i < end; i++ {
		b.WriteString(t.renderRow(t.visible[i], i == t.cursor))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *ExplorerTree) renderRow(e scan.Entry, selected bool) string {
	var b strings.Builder

	if t.columns.GitStatus {
		if e.GitStatus == git.StatusNone {
			b.WriteString("  ")
		} else {
			marker := lipgloss.NewStyle().Foreground(e.GitStatus.Color())
			b.WriteString(marker.Render(string(e.GitStatus.Rune())))
			b.WriteByte(' ')
		}
	}

	if t.columns.Permissions {
		perms := e.Permissions
		if perms == "" {
			perms = format.PermissionsPlaceholder
		}
		b.WriteString(t.styles.Dim.Render(perms))
		b.WriteByte(' ')
	}

	b.WriteString(strings.Repeat("    ", e.Depth-1))

	switch {
	case e.IsDir && e.IsExpanded:
		b.WriteString("▼ ")
	case e.IsDir:
		b.WriteString("▶ ")
	default:
		b.WriteString("  ")
	}

	if t.columns.Icons {
		icon := icons.ForPath(e.Path, e.IsDir)
		b.WriteString(lipgloss.NewStyle().Foreground(icon.Color).Render(icon.Glyph))
		b.WriteByte(' ')
	}

	if e.IsDir {
		b.WriteString(t.styles.Dir.Render(e.Name))
	} else {
		b.WriteString(e.Name)
	}

	row := b.String()

	if t.columns.Size && e.Size != nil {
		size := format.Size(*e.Size)
		pad := t.width - lipgloss.Width(row) - lipgloss.Width(size)
		if pad < 1 {
			pad = 1
		}
		row += strings.Repeat(" ", pad) + t.styles.Dim.Render(size)
	}

	if selected {
		return t.styles.Selected.Render(fmt.Sprintf("%-*s", t.width, row))
	}
	return row
}

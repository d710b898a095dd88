// Package git classifies working-tree paths by their git status. The
// whole repository state is loaded with a single porcelain invocation
// before the interactive session starts and is never refreshed.
package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the classification of one path.
type Status int

const (
	StatusNone Status = iota
	StatusUntracked
	StatusNew
	StatusModified
	StatusDeleted
	StatusRenamed
	StatusTypechange
	StatusConflicted
)

// Rune returns the single-character marker shown next to an entry.
func (s Status) Rune() rune {
	switch s {
	case StatusUntracked:
		return '?'
	case StatusNew:
		return 'A'
	case StatusModified:
		return 'M'
	case StatusDeleted:
		return 'D'
	case StatusRenamed:
		return 'R'
	case StatusTypechange:
		return 'T'
	case StatusConflicted:
		return 'C'
	default:
		return ' '
	}
}

// Color returns the marker color for a status class.
func (s Status) Color() lipgloss.Color {
	switch s {
	case StatusNew, StatusRenamed:
		return lipgloss.Color("2")
	case StatusModified, StatusTypechange:
		return lipgloss.Color("3")
	case StatusDeleted:
		return lipgloss.Color("1")
	case StatusConflicted:
		return lipgloss.Color("9")
	case StatusUntracked:
		return lipgloss.Color("5")
	default:
		return lipgloss.Color("7")
	}
}

// Cache holds the status of every changed path in a repository, keyed
// by path relative to the repository root.
type Cache struct {
	root     string
	statuses map[string]Status
}

// Load runs git once under root and builds the status cache. It returns
// (nil, nil) when root is not inside a work tree; callers fall back to
// unmarked entries.
func Load(root string) (*Cache, error) {
	inside := exec.Command("git", "-C", root, "rev-parse", "--is-inside-work-tree")
	if out, err := inside.Output(); err != nil || strings.TrimSpace(string(out)) != "true" {
		return nil, nil
	}

	top := exec.Command("git", "-C", root, "rev-parse", "--show-toplevel")
	topOut, err := top.Output()
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}
	repoRoot := strings.TrimSpace(string(topOut))

	status := exec.Command("git", "-C", root, "status", "--porcelain", "-z", "--untracked-files=all")
	out, err := status.Output()
	if err != nil {
		return nil, fmt.Errorf("reading git status: %w", err)
	}

	return &Cache{root: repoRoot, statuses: parsePorcelain(out)}, nil
}

// Get returns the status for an absolute path, StatusNone when the path
// is clean or the cache is absent.
func (c *Cache) Get(path string) Status {
	if c == nil {
		return StatusNone
	}
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return StatusNone
	}
	return c.statuses[filepath.ToSlash(rel)]
}

// parsePorcelain decodes NUL-terminated `git status --porcelain -z`
// records. Rename records carry a second, original-path field that must
// be consumed without producing an entry.
func parsePorcelain(out []byte) map[string]Status {
	statuses := make(map[string]Status)
	fields := strings.Split(string(out), "\x00")

	for i := 0; i < len(fields); i++ {
		record := fields[i]
		if len(record) < 4 {
			continue
		}
		x, y := record[0], record[1]
		path := record[3:]

		s := classify(x, y)
		if s == StatusRenamed && i+1 < len(fields) {
			i++ // skip the original path field
		}
		if s != StatusNone {
			statuses[path] = s
		}
	}
	return statuses
}

func classify(x, y byte) Status {
	switch {
	case x == '?' && y == '?':
		return StatusUntracked
	case x == 'U' || y == 'U', x == 'A' && y == 'A', x == 'D' && y == 'D':
		return StatusConflicted
	case x == 'R' || y == 'R':
		return StatusRenamed
	case x == 'A' || y == 'A':
		return StatusNew
	case x == 'D' || y == 'D':
		return StatusDeleted
	case x == 'T' || y == 'T':
		return StatusTypechange
	case x == 'M' || y == 'M':
		return StatusModified
	default:
		return StatusNone
	}
}

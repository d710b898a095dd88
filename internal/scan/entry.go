package scan

import "github.com/artpar/arbor/internal/git"

// Entry is one filesystem node discovered during the scan.
//
// Entries live in a master list built once per session. The list is
// pre-order depth-first: an entry is immediately followed by all of its
// descendants, so visibility can be decided with a depth-keyed stack
// and no parent pointers. After construction only IsExpanded mutates.
type Entry struct {
	// Path is the full path of the node; unique within the master list.
	Path string
	// Name is the base name, what actually gets rendered.
	Name string
	// Depth is the distance from the scan root; direct children of the
	// root have depth 1. The root itself is never part of the list.
	Depth int
	IsDir bool
	// IsExpanded is meaningful only for directories.
	IsExpanded bool

	// Enrichment, each filled only when requested at scan time and
	// never refreshed. Size is nil for directories and failed lookups;
	// Permissions is empty when unknown.
	Size        *int64
	Permissions string
	GitStatus   git.Status
}

package components

import "github.com/artpar/arbor/internal/scan"

// This file contains pure functions over the master and visible lists.
// They take values and return values, which keeps the explorer
// component a thin shell and makes the state machine trivially
// testable.

// VisibleEntries derives the visible list from the master list.
//
// It walks the master list in its stored pre-order once, keeping a
// stack of expand flags for the chain of ancestor directories above the
// current entry. Because the list is pre-order and depth-annotated,
// popping the stack down to len < depth is enough to discard ancestors
// that are no longer on the current path; no parent pointers exist
// anywhere. An entry is visible iff every flag left on the stack is
// true. Directories push their own flag so their descendants can test
// it, whether or not they are visible themselves.
func VisibleEntries(master []scan.Entry) []scan.Entry {
	visible := make([]scan.Entry, 0, len(master))
	stack := make([]bool, 0, 8)

	for _, e := range master {
		for len(stack) >= e.Depth {
			stack = stack[:len(stack)-1]
		}

		open := true
		for _, expanded := range stack {
			if !expanded {
				open = false
				break
			}
		}
		if open {
			visible = append(visible, e)
		}

		if e.IsDir {
			stack = append(stack, e.IsExpanded)
		}
	}
	return visible
}

// Toggle flips the expand flag of the directory at path in the master
// list. It reports whether a flag changed: files and unknown paths are
// no-ops.
func Toggle(master []scan.Entry, path string) bool {
	for i := range master {
		if master[i].Path == path {
			if !master[i].IsDir {
				return false
			}
			master[i].IsExpanded = !master[i].IsExpanded
			return true
		}
	}
	return false
}

// WrapCursor moves the cursor by delta over a list of n entries,
// wrapping at both ends. An empty list has no cursor (-1); moving an
// undefined cursor over a non-empty list lands on the first entry.
func WrapCursor(cursor, delta, n int) int {
	if n == 0 {
		return -1
	}
	if cursor < 0 {
		return 0
	}
	next := cursor + delta
	if next < 0 {
		return n - 1
	}
	if next >= n {
		return 0
	}
	return next
}

// Reanchor places the cursor after the visible list was rebuilt. The
// previously selected path wins when it survived the rebuild; otherwise
// the cursor keeps its old ordinal position, clamped to the new length.
// The clamp is deliberate: when a collapse swallows the selection the
// cursor lands on whatever now occupies that position, not on the
// collapsed ancestor.
func Reanchor(visible []scan.Entry, path string, prev int) int {
	if len(visible) == 0 {
		return -1
	}
	for i := range visible {
		if visible[i].Path == path {
			return i
		}
	}
	if prev < 0 {
		return 0
	}
	if prev >= len(visible) {
		return len(visible) - 1
	}
	return prev
}

// AdjustOffset scrolls the window so the cursor stays visible.
func AdjustOffset(cursor, offset, height int) int {
	if height < 1 {
		height = 1
	}
	if cursor < 0 {
		return 0
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+height {
		return cursor - height + 1
	}
	return offset
}

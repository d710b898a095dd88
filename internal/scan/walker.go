package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// Options controls what the scan produces.
type Options struct {
	// ShowHidden includes dot-prefixed entries.
	ShowHidden bool
	// RespectIgnore filters entries matched by the root .gitignore.
	RespectIgnore bool
	// DirsOnly drops file entries entirely.
	DirsOnly bool
	// MaxDepth limits descent; 0 means unlimited. Entries deeper than
	// MaxDepth are not produced.
	MaxDepth int
	// ExpandDepth pre-expands directories with Depth < ExpandDepth.
	ExpandDepth int

	// Enrichment toggles, each independent.
	Size        bool
	Permissions bool
	GitStatus   bool
}

// Walker produces the master list for a scan root. Per-entry failures
// (unreadable subdirectories and the like) are logged and dropped; only
// a failure to access the root itself is an error.
type Walker struct {
	opts    Options
	matcher *ignore.GitIgnore
	log     zerolog.Logger
}

// NewWalker builds a walker. When ignore rules are requested it
// compiles the root's .gitignore; a missing or unreadable ignore file
// just disables filtering.
func NewWalker(root string, opts Options, log zerolog.Logger) *Walker {
	w := &Walker{opts: opts, log: log}
	if opts.RespectIgnore {
		matcher, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
		if err == nil {
			w.matcher = matcher
		} else {
			log.Debug().Err(err).Msg("no usable .gitignore, ignore rules disabled")
		}
	}
	return w
}

// Walk returns the pre-order master list under root, excluding root
// itself. Children of each directory come back in name order, as
// os.ReadDir yields them.
func (w *Walker) Walk(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var entries []Entry
	w.walk(root, root, 1, &entries)
	return entries, nil
}

func (w *Walker) walk(dir, root string, depth int, out *[]Entry) {
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		// Recoverable: the parent stays in the list, this subtree is
		// simply absent.
		w.log.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return
	}

	for _, child := range children {
		name := child.Name()
		if !w.opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		if w.matcher != nil {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && w.matcher.MatchesPath(rel) {
				continue
			}
		}

		isDir := child.IsDir()
		if w.opts.DirsOnly && !isDir {
			continue
		}

		*out = append(*out, Entry{
			Path:  path,
			Name:  name,
			Depth: depth,
			IsDir: isDir,
		})
		if isDir {
			w.walk(path, root, depth+1, out)
		}
	}
}

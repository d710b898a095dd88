package scan

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/artpar/arbor/internal/format"
	"github.com/artpar/arbor/internal/git"
)

// Collect builds the master list for root: walk, pre-expand, enrich.
// The enrichment stage stats entries concurrently, but by then the list
// order is fixed, so callers only ever observe an ordered, fully built
// result.
func Collect(root string, opts Options, log zerolog.Logger) ([]Entry, error) {
	entries, err := NewWalker(root, opts, log).Walk(root)
	if err != nil {
		return nil, err
	}

	if opts.ExpandDepth > 0 {
		for i := range entries {
			if entries[i].IsDir && entries[i].Depth < opts.ExpandDepth {
				entries[i].IsExpanded = true
			}
		}
	}

	enrich(root, entries, opts, log)
	return entries, nil
}

func enrich(root string, entries []Entry, opts Options, log zerolog.Logger) {
	var cache *git.Cache
	if opts.GitStatus {
		var err error
		cache, err = git.Load(root)
		if err != nil {
			log.Debug().Err(err).Msg("git status unavailable")
		}
	}

	if !opts.Size && !opts.Permissions && cache == nil {
		return
	}

	workers := runtime.NumCPU() * 2
	if workers > 16 {
		workers = 16
	}
	p := pool.New().WithMaxGoroutines(workers)

	for i := range entries {
		e := &entries[i]
		p.Go(func() {
			e.GitStatus = cache.Get(e.Path)

			if !opts.Size && !opts.Permissions {
				return
			}
			info, err := os.Lstat(e.Path)
			if err != nil {
				// Lookup failed; renderers fall back to placeholders.
				log.Debug().Err(err).Str("path", e.Path).Msg("stat failed during enrichment")
				return
			}
			if opts.Size && !e.IsDir {
				size := info.Size()
				e.Size = &size
			}
			if opts.Permissions {
				e.Permissions = format.Permissions(info.Mode())
			}
		})
	}
	p.Wait()
}

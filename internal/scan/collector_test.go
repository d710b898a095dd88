package scan

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectExpandDepth(t *testing.T) {
	root := writeTree(t)

	t.Run("zero leaves everything collapsed", func(t *testing.T) {
		entries, err := Collect(root, Options{}, zerolog.Nop())
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, e.IsExpanded, e.Name)
		}
	})

	t.Run("depth one expands only top-level directories", func(t *testing.T) {
		entries, err := Collect(root, Options{ExpandDepth: 2}, zerolog.Nop())
		require.NoError(t, err)
		expanded := map[string]bool{}
		for _, e := range entries {
			if e.IsDir {
				expanded[e.Name] = e.IsExpanded
			}
		}
		assert.True(t, expanded["src"])
		assert.True(t, expanded["build"])
		assert.False(t, expanded["lib"], "depth-2 directory must stay collapsed")
	})

	t.Run("files are never marked expanded", func(t *testing.T) {
		entries, err := Collect(root, Options{ExpandDepth: 10}, zerolog.Nop())
		require.NoError(t, err)
		for _, e := range entries {
			if !e.IsDir {
				assert.False(t, e.IsExpanded, e.Name)
			}
		}
	})
}

func TestCollectEnrichment(t *testing.T) {
	root := writeTree(t)

	t.Run("sizes only when requested", func(t *testing.T) {
		plain, err := Collect(root, Options{}, zerolog.Nop())
		require.NoError(t, err)
		for _, e := range plain {
			assert.Nil(t, e.Size)
			assert.Empty(t, e.Permissions)
		}

		sized, err := Collect(root, Options{Size: true}, zerolog.Nop())
		require.NoError(t, err)
		for _, e := range sized {
			if e.IsDir {
				assert.Nil(t, e.Size, "directories carry no size: %s", e.Name)
			} else {
				require.NotNil(t, e.Size, e.Name)
				assert.EqualValues(t, 2, *e.Size)
			}
		}
	})

	t.Run("permissions fill for every entry", func(t *testing.T) {
		entries, err := Collect(root, Options{Permissions: true}, zerolog.Nop())
		require.NoError(t, err)
		for _, e := range entries {
			require.Len(t, e.Permissions, 10, e.Name)
			if e.IsDir {
				assert.Equal(t, byte('d'), e.Permissions[0])
			}
		}
	})

	t.Run("enrichment preserves order", func(t *testing.T) {
		entries, err := Collect(root, Options{Size: true, Permissions: true}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md", "build", "out.bin", "src", "lib", "util.go", "main.go"}, names(entries))
	})
}

func TestCollectRootError(t *testing.T) {
	_, err := Collect("/no/such/dir", Options{}, zerolog.Nop())
	assert.Error(t, err)
}

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree lays out a small fixture:
//
//	root/
//	  .hidden
//	  README.md
//	  build/out.bin
//	  src/
//	    lib/util.go
//	    main.go
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "lib"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))
	for _, f := range []string{
		".hidden",
		"README.md",
		filepath.Join("build", "out.bin"),
		filepath.Join("src", "main.go"),
		filepath.Join("src", "lib", "util.go"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x\n"), 0o644))
	}
	return root
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestWalkPreOrder(t *testing.T) {
	root := writeTree(t)
	entries, err := NewWalker(root, Options{}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)

	// Name-sorted siblings, every directory immediately followed by its
	// descendants, hidden entries excluded, root excluded.
	assert.Equal(t, []string{"README.md", "build", "out.bin", "src", "lib", "util.go", "main.go"}, names(entries))
}

func TestWalkDepths(t *testing.T) {
	root := writeTree(t)
	entries, err := NewWalker(root, Options{}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.Equal(t, 1, byName["README.md"].Depth)
	assert.Equal(t, 1, byName["src"].Depth)
	assert.True(t, byName["src"].IsDir)
	assert.Equal(t, 2, byName["main.go"].Depth)
	assert.Equal(t, 2, byName["lib"].Depth)
	assert.Equal(t, 3, byName["util.go"].Depth)
	assert.False(t, byName["util.go"].IsDir)
}

func TestWalkShowHidden(t *testing.T) {
	root := writeTree(t)
	entries, err := NewWalker(root, Options{ShowHidden: true}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)
	assert.Contains(t, names(entries), ".hidden")
}

func TestWalkRespectsIgnoreRules(t *testing.T) {
	root := writeTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("build/\n"), 0o644))

	entries, err := NewWalker(root, Options{RespectIgnore: true}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)
	assert.NotContains(t, names(entries), "build")
	assert.NotContains(t, names(entries), "out.bin")
	assert.Contains(t, names(entries), "src")
}

func TestWalkDirsOnly(t *testing.T) {
	root := writeTree(t)
	entries, err := NewWalker(root, Options{DirsOnly: true}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "src", "lib"}, names(entries))
}

func TestWalkMaxDepth(t *testing.T) {
	root := writeTree(t)
	entries, err := NewWalker(root, Options{MaxDepth: 1}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "build", "src"}, names(entries))
}

func TestWalkRootErrors(t *testing.T) {
	t.Run("missing root is fatal", func(t *testing.T) {
		_, err := NewWalker("/no/such/dir", Options{}, zerolog.Nop()).Walk("/no/such/dir")
		assert.Error(t, err)
	})

	t.Run("file root is fatal", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		_, err := NewWalker(file, Options{}, zerolog.Nop()).Walk(file)
		assert.ErrorContains(t, err, "not a directory")
	})
}

func TestWalkEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	entries, err := NewWalker(root, Options{}, zerolog.Nop()).Walk(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

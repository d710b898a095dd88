package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# readme\n"), 0o644))
	return root
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_PrintsTree(t *testing.T) {
	root := writeFixture(t)

	out, err := runRoot(t, root)
	require.NoError(t, err)

	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "1 directories, 2 files")
}

func TestRootCommand_DirsOnly(t *testing.T) {
	root := writeFixture(t)

	out, err := runRoot(t, "--dirs-only", root)
	require.NoError(t, err)

	assert.Contains(t, out, "src")
	assert.NotContains(t, out, "main.go")
	assert.Contains(t, out, "1 directories, 0 files")
}

func TestRootCommand_Level(t *testing.T) {
	root := writeFixture(t)

	out, err := runRoot(t, "-L", "1", root)
	require.NoError(t, err)

	assert.Contains(t, out, "src")
	assert.NotContains(t, out, "main.go")
}

func TestRootCommand_Size(t *testing.T) {
	root := writeFixture(t)

	out, err := runRoot(t, "--size", root)
	require.NoError(t, err)
	assert.Contains(t, out, "(13 B)")
}

func TestRootCommand_InvalidPath(t *testing.T) {
	_, err := runRoot(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

func TestRootCommand_PathIsFile(t *testing.T) {
	root := writeFixture(t)
	_, err := runRoot(t, filepath.Join(root, "README.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRootCommand_ColorFlag(t *testing.T) {
	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := runRoot(t, "--color", "sometimes", writeFixture(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --color value")
	})

	t.Run("accepts never", func(t *testing.T) {
		_, err := runRoot(t, "--color", "never", writeFixture(t))
		assert.NoError(t, err)
	})
}

func TestRootCommand_HasInteractiveSubcommand(t *testing.T) {
	cmd := NewRootCommand("test")

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "interactive")
}

func TestResolveRoot(t *testing.T) {
	t.Run("defaults to the working directory", func(t *testing.T) {
		abs, err := resolveRoot(nil)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(abs))
	})

	t.Run("returns an absolute path", func(t *testing.T) {
		root := t.TempDir()
		abs, err := resolveRoot([]string{root})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(abs))
	})
}

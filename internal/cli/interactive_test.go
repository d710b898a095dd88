package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveCommand_Metadata(t *testing.T) {
	cmd := NewInteractiveCommand()

	assert.Equal(t, "interactive", cmd.Name())
	assert.Contains(t, cmd.Aliases, "i")

	for _, flag := range []string{"all", "gitignore", "icons", "size", "permissions", "git-status", "expand-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestInteractiveCommand_InvalidPath(t *testing.T) {
	cmd := NewInteractiveCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

// Package editor resolves and builds the external editor invocation.
package editor

import (
	"os"
	"os/exec"
	"runtime"
)

// Resolve returns the user's preferred editor from $EDITOR, with a
// platform fallback when unset.
func Resolve() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vim"
}

// Command builds the command that opens path in the resolved editor.
// The command inherits the terminal; callers are responsible for
// suspending any full-screen UI around it.
func Command(path string) *exec.Cmd {
	cmd := exec.Command(Resolve(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

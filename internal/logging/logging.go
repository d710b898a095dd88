// Package logging provides the application logger. The explorer owns
// the terminal, so logs go to a file under the user cache directory and
// only when ARBOR_DEBUG is set; otherwise the logger is a no-op.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DebugEnv enables file logging when set to any non-empty value.
const DebugEnv = "ARBOR_DEBUG"

// New returns the application logger.
func New() zerolog.Logger {
	if os.Getenv(DebugEnv) == "" {
		return zerolog.Nop()
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return zerolog.Nop()
	}
	dir := filepath.Join(cacheDir, "arbor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

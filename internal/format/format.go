// Package format renders file metadata as fixed-width, human-readable
// columns for both the classic view and the interactive explorer.
package format

import (
	"os"

	"github.com/dustin/go-humanize"
)

// PermissionsPlaceholder is rendered when permission bits are unknown,
// either because the feature is off or the stat call failed.
const PermissionsPlaceholder = "----------"

// Size formats a byte count with binary prefixes (KiB, MiB, ...).
func Size(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// Permissions renders a mode as the familiar ls-style string, a file
// type character followed by three rwx triads.
func Permissions(mode os.FileMode) string {
	buf := make([]byte, 10)
	buf[0] = typeChar(mode)

	perm := mode.Perm()
	chars := []byte("rwxrwxrwx")
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = chars[i]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf)
}

func typeChar(mode os.FileMode) byte {
	switch {
	case mode.IsDir():
		return 'd'
	case mode&os.ModeSymlink != 0:
		return 'l'
	case mode&os.ModeNamedPipe != 0:
		return 'p'
	case mode&os.ModeSocket != 0:
		return 's'
	case mode&os.ModeDevice != 0:
		return 'b'
	default:
		return '-'
	}
}

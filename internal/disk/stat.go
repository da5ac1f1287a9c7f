//go:build !windows

// Package disk reports filesystem capacity for import preflight checks.
package disk

import (
	"golang.org/x/sys/unix"
)

// FreeSpace returns the number of bytes available to the current user on
// the filesystem holding path.
func FreeSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}

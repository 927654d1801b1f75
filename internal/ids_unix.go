//go:build unix

package internal

import (
	"io/fs"
	"syscall"
)

// Uid returns the numeric owner of the file described by from.
func Uid(from fs.FileInfo) int {
	if stat, ok := from.Sys().(*syscall.Stat_t); ok {
		return int(stat.Uid)
	}
	// invalid uid = default value
	return -1
}

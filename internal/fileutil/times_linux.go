//go:build linux

package fileutil

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the inode change time. Linux does not expose a true
// creation timestamp through stat, matching the behavior of the OS tools.
func createdTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	}
	return info.ModTime()
}

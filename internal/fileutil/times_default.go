//go:build !linux && !darwin && !windows

package fileutil

import (
	"os"
	"time"
)

func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}

package fileutil

import (
	"os"
	"time"
)

// Times holds the timestamps used as sort keys for a file
type Times struct {
	Modified time.Time
	Created  time.Time
}

// StatTimes collects the modification and creation timestamps of a file.
// On platforms without a creation timestamp the modification time is used.
func StatTimes(path string) (Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Times{}, err
	}
	return Times{
		Modified: info.ModTime(),
		Created:  createdTime(info),
	}, nil
}

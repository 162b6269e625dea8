//go:build windows

package validate

import "os"

// dirWritable is a best-effort check on Windows, where access bits are
// advisory. The executor still surfaces the real error if a rename fails.
func dirWritable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0200 != 0
}

//go:build unix

package validate

import "golang.org/x/sys/unix"

// dirWritable reports whether the current process can write into dir
func dirWritable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}

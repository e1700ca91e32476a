//go:build !windows

package system

import "golang.org/x/sys/unix"

// Writable reports whether the current user may write to dir.
func Writable(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}

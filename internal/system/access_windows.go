//go:build windows

package system

import "os"

// Writable reports whether dir is missing the read-only attribute.
func Writable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o200 != 0
}

//go:build !unix

package schema

import "syscall"

// Windows errnos have no POSIX names; the fs.Err* mapping in codeOf covers
// the common cases.
func errnoName(syscall.Errno) string {
	return ""
}

//go:build unix

package schema

import (
	"golang.org/x/sys/unix"
	"syscall"
)

func errnoName(errno syscall.Errno) string {
	return unix.ErrnoName(errno)
}

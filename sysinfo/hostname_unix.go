//go:build unix

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Hostname returns the node name reported by uname(2).
func Hostname() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("%w: uname: %v", ErrIO, err)
	}
	return unix.ByteSliceToString(uts.Nodename[:]), nil
}

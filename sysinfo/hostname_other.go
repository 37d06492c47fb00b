//go:build !unix

package sysinfo

import (
	"fmt"
	"os"
)

// Hostname returns the host name reported by the kernel.
func Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("%w: hostname: %v", ErrIO, err)
	}
	return name, nil
}

//go:build unix

package sysinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

// kernelRelease returns the uname release string.
func kernelRelease(_ context.Context) (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

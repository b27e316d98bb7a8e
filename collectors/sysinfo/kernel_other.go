//go:build !unix

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
)

// kernelRelease asks gopsutil on platforms without uname.
func kernelRelease(ctx context.Context) (string, error) {
	return host.KernelVersionWithContext(ctx)
}

// Package sysinfo reads the host facts shown by the greeter: identity, OS
// release, kernel, memory, disk and desktop session.
package sysinfo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"gitlab.com/tinyland/lab/hello/internal/format"
)

const (
	// defaultOSReleasePath is the freedesktop os-release location.
	defaultOSReleasePath = "/etc/os-release"

	// rootMount is the filesystem whose free space is reported.
	rootMount = "/"
)

// Reader gathers host facts. The zero value is not usable; call New.
type Reader struct {
	logger        *slog.Logger
	osReleasePath string

	// The following allow injection for testing.
	hostInfo      func(ctx context.Context) (*host.InfoStat, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
	kernelRelease func(ctx context.Context) (string, error)
	currentUser   func() (*user.User, error)
	getenv        func(string) string
}

// New creates a Reader backed by the running system.
// If logger is nil, a no-op logger is used.
func New(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reader{
		logger:        logger,
		osReleasePath: defaultOSReleasePath,
		hostInfo:      host.InfoWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
		kernelRelease: kernelRelease,
		currentUser:   user.Current,
		getenv:        os.Getenv,
	}
}

// Hostname returns the machine's host name.
func (r *Reader) Hostname(ctx context.Context) (string, error) {
	info, err := r.hostInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}
	if info.Hostname == "" {
		return "", fmt.Errorf("host info: empty hostname")
	}
	return info.Hostname, nil
}

// Username returns the login name of the current user, falling back to
// $USER when the user database is unavailable.
func (r *Reader) Username() (string, error) {
	u, err := r.currentUser()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}
	if name := r.getenv("USER"); name != "" {
		r.logger.Debug("user lookup failed, using $USER", "error", err)
		return name, nil
	}
	if err == nil {
		err = fmt.Errorf("empty username")
	}
	return "", fmt.Errorf("current user: %w", err)
}

// Release returns the PRETTY_NAME of the installed distribution. When
// os-release is unreadable it falls back to the platform name reported by
// the host.
func (r *Reader) Release(ctx context.Context) (string, error) {
	name, err := readPrettyName(r.osReleasePath)
	if err == nil && name != "" {
		return name, nil
	}
	r.logger.Debug("os-release unavailable, using platform info",
		"path", r.osReleasePath,
		"error", err,
	)

	info, herr := r.hostInfo(ctx)
	if herr != nil {
		return "", fmt.Errorf("release: %w", herr)
	}
	platform := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if platform == "" {
		return "", fmt.Errorf("release: no os-release and no platform info")
	}
	return format.Capitalize(platform), nil
}

// Kernel returns the running kernel release, e.g. "6.9.7-arch1-1".
func (r *Reader) Kernel(ctx context.Context) (string, error) {
	rel, err := r.kernelRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("kernel release: %w", err)
	}
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", fmt.Errorf("kernel release: empty")
	}
	return rel, nil
}

// MemoryUsed returns total minus free physical memory, formatted, e.g.
// "3.2 GB". The subtraction saturates at zero.
func (r *Reader) MemoryUsed(ctx context.Context) (string, error) {
	vm, err := r.virtualMemory(ctx)
	if err != nil {
		return "", fmt.Errorf("memory info: %w", err)
	}
	var used uint64
	if vm.Total > vm.Free {
		used = vm.Total - vm.Free
	}
	return format.FormatBytes(used), nil
}

// DiskFree returns the free space on the root filesystem, formatted.
func (r *Reader) DiskFree(ctx context.Context) (string, error) {
	usage, err := r.diskUsage(ctx, rootMount)
	if err != nil {
		return "", fmt.Errorf("disk usage %s: %w", rootMount, err)
	}
	return format.FormatBytes(usage.Free), nil
}

// Desktop returns the desktop environment name from XDG_CURRENT_DESKTOP or
// XDG_SESSION_DESKTOP, or "" outside a graphical session.
func (r *Reader) Desktop() string {
	if de := r.getenv("XDG_CURRENT_DESKTOP"); de != "" {
		return de
	}
	return r.getenv("XDG_SESSION_DESKTOP")
}

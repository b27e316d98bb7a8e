// Package collectors holds the process plumbing shared by the fact
// collectors that shell out to external tools (package managers, playerctl).
package collectors

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Output is the captured result of one external command. It is owned by the
// unit of work that produced it and is never shared.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// RunFunc executes an external command and captures its output.
// Collectors accept a RunFunc so tests can substitute canned output.
type RunFunc func(ctx context.Context, name string, args ...string) (Output, error)

// execCommand allows injection of command construction for testing.
var execCommand = exec.CommandContext

// Run executes name with args and captures stdout and stderr.
//
// A non-zero exit status is not an error: it is reported in Output.ExitCode
// and the caller decides whether it is acceptable. The returned error is
// non-nil only when the process could not be started or the context ended
// before it finished. A missing binary yields an error matching
// exec.ErrNotFound.
func Run(ctx context.Context, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer

	cmd := execCommand(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}
		return out, nil
	}

	return out, err
}

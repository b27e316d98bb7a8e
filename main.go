// hello prints a greeting box with a summary of the host: OS release,
// kernel, memory, disk, desktop, pending updates, installed packages,
// local weather and the track currently playing.
//
// Usage:
//
//	hello [flags]
//
// Flags:
//
//	-c, --config string  Path to configuration file (default: ~/.config/hello/config.json)
//	    --no-color       Disable colored output
//	-v, --verbose        Enable debug logging on stderr
//	    --version        Print version and exit
//	-h, --help           Print usage and exit
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(newApp(os.Stdout, os.Stderr))
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hello: %v\n", err)
		stop()
		os.Exit(1)
	}
}

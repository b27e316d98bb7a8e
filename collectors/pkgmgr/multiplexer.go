package pkgmgr

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"gitlab.com/tinyland/lab/hello/collectors"
	"gitlab.com/tinyland/lab/hello/internal/format"
)

// Multiplexer runs one command per configured manager concurrently and sums
// the results.
type Multiplexer struct {
	registry *Registry
	logger   *slog.Logger

	// run allows injection of command execution for testing.
	run collectors.RunFunc
}

// NewMultiplexer creates a Multiplexer over registry. A nil registry uses the
// built-in table and a nil logger discards events.
func NewMultiplexer(registry *Registry, logger *slog.Logger) *Multiplexer {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Multiplexer{
		registry: registry,
		logger:   logger,
		run:      collectors.Run,
	}
}

// NewMultiplexerWithRunner is like NewMultiplexer but executes commands
// through run instead of spawning processes.
func NewMultiplexerWithRunner(registry *Registry, logger *slog.Logger, run collectors.RunFunc) *Multiplexer {
	m := NewMultiplexer(registry, logger)
	if run != nil {
		m.run = run
	}
	return m
}

// unitResult is the slot written by exactly one unit goroutine.
type unitResult struct {
	count Count
	err   error
}

// Run queries every manager in ids for intent and returns the total.
//
// An empty list returns Disabled without running anything. Every identifier
// is validated before any command starts; an unknown one aborts with an
// *UnsupportedManagerError. Repeated identifiers are queried once. A manager
// whose command fails is logged at warn level and counted as zero.
func (m *Multiplexer) Run(ctx context.Context, ids []ID, intent Intent) (Count, error) {
	if len(ids) == 0 {
		return Disabled, nil
	}

	unique := dedupe(ids)
	if len(unique) < len(ids) {
		m.logger.Debug("ignoring duplicate package managers",
			"configured", len(ids),
			"unique", len(unique),
		)
	}

	specs := make([]CommandSpec, len(unique))
	for i, id := range unique {
		spec, err := m.registry.Spec(id, intent)
		if err != nil {
			return 0, err
		}
		specs[i] = spec
	}

	results := make([]unitResult, len(unique))
	var wg sync.WaitGroup
	for i := range unique {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := m.runUnit(ctx, specs[i])
			if err != nil {
				err = &UnitError{ID: unique[i], Intent: intent, Err: err}
			}
			results[i] = unitResult{count: n, err: err}
		}(i)
	}
	wg.Wait()

	var total Count
	for i, r := range results {
		if r.err != nil {
			m.logger.Warn("package manager query failed",
				"manager", string(unique[i]),
				"intent", intent.String(),
				"error", r.err,
			)
			continue
		}
		m.logger.Debug("package manager query",
			"manager", string(unique[i]),
			"intent", intent.String(),
			"count", int(r.count),
		)
		total += r.count
	}
	return total, nil
}

func (m *Multiplexer) runUnit(ctx context.Context, spec CommandSpec) (Count, error) {
	out, err := m.run(ctx, spec.Name, spec.Args...)
	if err != nil {
		return 0, err
	}
	if !spec.Accepts(out.ExitCode) {
		return 0, &ExitCodeError{Command: spec.String(), Code: out.ExitCode}
	}
	return Parse(spec, out)
}

func dedupe(ids []ID) []ID {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	unique := format.UniqueStrings(names)
	out := make([]ID, len(unique))
	for i, n := range unique {
		out[i] = ID(n)
	}
	return out
}

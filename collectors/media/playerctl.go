// Package media reports the track currently playing through MPRIS.
package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"gitlab.com/tinyland/lab/hello/collectors"
)

const (
	// playerctlBinary queries MPRIS players.
	playerctlBinary = "playerctl"

	// trackFormat is the playerctl metadata template.
	trackFormat = "{{ artist }} - {{ title }}"

	// NoPlayersSentinel is what playerctl prints on stderr when no player
	// is running.
	NoPlayersSentinel = "No players found"
)

// Player looks up the current track.
type Player struct {
	logger *slog.Logger

	// run allows injection of command execution for testing.
	run collectors.RunFunc
}

// NewPlayer creates a Player. If logger is nil, a no-op logger is used.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Player{
		logger: logger,
		run:    collectors.Run,
	}
}

// NowPlaying returns "artist - title" for the active player, or "" when
// nothing is playing or playerctl is not installed. Other failures are
// logged and also yield "".
func (p *Player) NowPlaying(ctx context.Context) string {
	out, err := p.run(ctx, playerctlBinary, "metadata", "-f", trackFormat)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			p.logger.Debug("playerctl not installed")
		} else {
			p.logger.Warn("playerctl failed", "error", err)
		}
		return ""
	}

	if strings.TrimSpace(string(out.Stderr)) == NoPlayersSentinel {
		return ""
	}
	if out.ExitCode != 0 {
		p.logger.Debug("playerctl exited with error",
			"exit_code", out.ExitCode,
			"stderr", strings.TrimSpace(string(out.Stderr)),
		)
		return ""
	}

	return strings.TrimSpace(string(out.Stdout))
}

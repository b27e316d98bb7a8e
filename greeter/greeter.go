// Package greeter gathers host facts and lays them out as the greeting box.
package greeter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/hello/collectors/pkgmgr"
	"gitlab.com/tinyland/lab/hello/collectors/weather"
	"gitlab.com/tinyland/lab/hello/config"
	"gitlab.com/tinyland/lab/hello/display/banner"
	"gitlab.com/tinyland/lab/hello/internal/format"
)

// System provides host facts.
type System interface {
	Hostname(ctx context.Context) (string, error)
	Username() (string, error)
	Release(ctx context.Context) (string, error)
	Kernel(ctx context.Context) (string, error)
	MemoryUsed(ctx context.Context) (string, error)
	DiskFree(ctx context.Context) (string, error)
	Desktop() string
}

// Weather provides current conditions.
type Weather interface {
	Current(ctx context.Context, q weather.Query) (weather.Conditions, error)
}

// Media provides the current track, or "".
type Media interface {
	NowPlaying(ctx context.Context) string
}

// Counter totals package counts across managers.
type Counter interface {
	Run(ctx context.Context, ids []pkgmgr.ID, intent pkgmgr.Intent) (pkgmgr.Count, error)
}

// Collaborators bundles the fact sources used by a Greeter.
type Collaborators struct {
	System   System
	Weather  Weather
	Media    Media
	Packages Counter
}

// UnavailableError reports a fact that could not be gathered.
type UnavailableError struct {
	Fact string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Fact, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Greeter assembles and renders the greeting frame.
type Greeter struct {
	cfg    *config.Config
	c      Collaborators
	logger *slog.Logger
	layout banner.Layout
	budget int

	// now allows injection of the clock for testing.
	now func() time.Time
}

// New creates a Greeter. If logger is nil, a no-op logger is used.
func New(cfg *config.Config, c Collaborators, logger *slog.Logger) *Greeter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Greeter{
		cfg:    cfg,
		c:      c,
		logger: logger,
		layout: banner.DefaultLayout(),
		budget: banner.DefaultBudget,
		now:    time.Now,
	}
}

// Frame gathers every fact in display order and returns the frame. Any
// fatal collaborator failure aborts before later facts are queried.
func (g *Greeter) Frame(ctx context.Context) (banner.Frame, error) {
	now := g.now()

	title, err := g.title(ctx)
	if err != nil {
		return banner.Frame{}, err
	}

	lines := []banner.DisplayLine{
		greetingLine(now, g.cfg.Name, g.budget),
		dateTimeLine(now, g.cfg.TimeFormat),
	}

	wx, err := g.c.Weather.Current(ctx, weather.Query{
		Location: g.cfg.Location,
		Units:    g.cfg.Units,
		Lang:     g.cfg.Lang,
		APIKey:   g.cfg.APIKey,
	})
	if err != nil {
		return banner.Frame{}, &UnavailableError{Fact: "weather", Err: err}
	}
	lines = append(lines, banner.DisplayLine{Icon: wx.Emoji(), Text: wx.Text()})

	facts := []struct {
		name   string
		icon   string
		suffix string
		trunc  bool
		fetch  func(context.Context) (string, error)
	}{
		{"release", iconRelease, "", true, g.c.System.Release},
		{"kernel", iconKernel, "", true, g.c.System.Kernel},
		{"memory", iconMemory, " Used", false, g.c.System.MemoryUsed},
		{"disk", iconDisk, " Free", false, g.c.System.DiskFree},
	}
	for _, f := range facts {
		v, err := f.fetch(ctx)
		if err != nil {
			return banner.Frame{}, &UnavailableError{Fact: f.name, Err: err}
		}
		if f.trunc {
			v = format.TruncateGraphemes(v, g.budget)
		}
		lines = append(lines, banner.DisplayLine{Icon: f.icon, Text: v + f.suffix})
	}

	lines = append(lines, desktopLine(g.c.System.Desktop(), g.budget))

	ids := managerIDs(g.cfg.PackageManagers)
	updates, err := g.c.Packages.Run(ctx, ids, pkgmgr.CountUpdates)
	if err != nil {
		return banner.Frame{}, fmt.Errorf("counting updates: %w", err)
	}
	installed, err := g.c.Packages.Run(ctx, ids, pkgmgr.CountInstalled)
	if err != nil {
		return banner.Frame{}, fmt.Errorf("counting packages: %w", err)
	}
	lines = append(lines, updatesLine(updates), packagesLine(installed))

	var track string
	if g.cfg.SongEnabled() {
		track = g.c.Media.NowPlaying(ctx)
	}
	lines = append(lines, mediaLine(track, g.budget))

	g.logger.Debug("frame assembled", "lines", len(lines), "updates", int(updates), "packages", int(installed))

	return banner.Frame{Title: title, Lines: lines}, nil
}

// Render gathers the facts and returns the finished box.
func (g *Greeter) Render(ctx context.Context) (string, error) {
	frame, err := g.Frame(ctx)
	if err != nil {
		return "", err
	}
	return g.layout.String(frame)
}

// title returns the configured hostname or user@host, capped to leave room
// for the border corners and an ellipsis.
func (g *Greeter) title(ctx context.Context) (string, error) {
	if g.cfg.Hostname != "" {
		return format.TruncateGraphemes(g.cfg.Hostname, g.titleBudget()), nil
	}
	user, err := g.c.System.Username()
	if err != nil {
		return "", &UnavailableError{Fact: "username", Err: err}
	}
	host, err := g.c.System.Hostname(ctx)
	if err != nil {
		return "", &UnavailableError{Fact: "hostname", Err: err}
	}
	return format.TruncateGraphemes(user+"@"+host, g.titleBudget()), nil
}

func (g *Greeter) titleBudget() int {
	return g.layout.BorderWidth - 5
}

func managerIDs(names config.PackageManagers) []pkgmgr.ID {
	if len(names) == 0 {
		return nil
	}
	ids := make([]pkgmgr.ID, len(names))
	for i, n := range names {
		ids[i] = pkgmgr.ID(n)
	}
	return ids
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/hello/collectors/media"
	"gitlab.com/tinyland/lab/hello/collectors/pkgmgr"
	"gitlab.com/tinyland/lab/hello/collectors/sysinfo"
	"gitlab.com/tinyland/lab/hello/collectors/weather"
	"gitlab.com/tinyland/lab/hello/config"
	"gitlab.com/tinyland/lab/hello/display/color"
	"gitlab.com/tinyland/lab/hello/docs/manpage"
	"gitlab.com/tinyland/lab/hello/greeter"
	"gitlab.com/tinyland/lab/hello/internal/logging"
	"gitlab.com/tinyland/lab/hello/shell"
)

// app carries the process wiring so tests can swap the collaborators.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	noColor    bool

	collaborators func(logger *slog.Logger) greeter.Collaborators
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:        stdout,
		stderr:        stderr,
		collaborators: systemCollaborators,
	}
}

// systemCollaborators returns the collaborators backed by the running host.
func systemCollaborators(logger *slog.Logger) greeter.Collaborators {
	return greeter.Collaborators{
		System:   sysinfo.New(logger.With("component", "sysinfo")),
		Weather:  weather.NewClient(logger.With("component", "weather")),
		Media:    media.NewPlayer(logger.With("component", "media")),
		Packages: pkgmgr.NewMultiplexer(pkgmgr.NewRegistry(), logger.With("component", "pkgmgr")),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Greet the user with a summary of the host",
		Long: `hello prints a fixed-width box with a greeting, the date, local weather,
OS release, kernel, memory and disk usage, desktop session, pending updates,
installed packages and the track currently playing.`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate("hello {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to configuration file (default: "+config.DefaultPath()+")")

	flags := cmd.Flags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newInitCmd(a), newManCmd(a))

	return cmd
}

func newInitCmd(a *app) *cobra.Command {
	var binary string
	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Print shell integration that greets once per terminal",
		Long:      "Print a snippet for ~/.bashrc, ~/.zshrc, config.fish or config.nu that runs hello\nwhen an interactive shell starts. Supported shells: bash, zsh, fish, nushell.",
		Example:   "  eval \"$(hello init bash)\"\n  hello init fish | source",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Names(),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := shell.ParseShellType(args[0])
			if err != nil {
				return err
			}
			cfg := shell.DefaultIntegrationConfig()
			if binary != "" {
				cfg.BinaryPath = binary
			}
			cfg.ConfigPath = a.configPath
			snippet, err := shell.GenerateIntegration(st, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.stdout, snippet)
			return err
		},
	}
	cmd.Flags().StringVar(&binary, "binary", "", "path to the hello binary used by the snippet")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	logger := logging.New(a.stderr, a.verbose)
	color.Apply(a.noColor)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		"managers", len(cfg.PackageManagers),
		"time_format", cfg.TimeFormat,
	)

	g := greeter.New(cfg, a.collaborators(logger), logger)
	out, err := g.Render(cmd.Context())
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(a.stdout, out)
	return err
}

func newManCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: "Print the man page in roff format",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprint(a.stdout, manpage.Generate(version, commit, date))
			return err
		},
	}
}

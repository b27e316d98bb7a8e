// Package manpage generates a roff-formatted man page for hello.
//
// The package manager table is read from the live registry, so the page
// always lists the commands the binary actually runs.
//
// Usage:
//
//	hello man | man -l -
//	hello man > ~/.local/share/man/man1/hello.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/hello/collectors/pkgmgr"
	"gitlab.com/tinyland/lab/hello/internal/logging"
)

// Generate produces a complete man(1) page. The version, commit and date
// come from the build-time linker variables.
func Generate(version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, version, time.Now())
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b)
	writeCommands(&b)
	writeConfiguration(&b)
	writePackageManagers(&b, pkgmgr.NewRegistry())
	writeFiles(&b)
	writeEnvironment(&b)
	writeExitStatus(&b)
	writeExamples(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "'") {
		s = `\&` + s
	}
	return s
}

func writeHeader(b *strings.Builder, version string, now time.Time) {
	fmt.Fprintf(b, ".TH HELLO 1 \"%s\" \"hello %s\" \"User Commands\"\n", now.Format("January 2006"), version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
hello \- greet the user with a summary of the host
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B hello
[\fIOPTIONS\fR]
.br
.B hello init
\fISHELL\fR
.br
.B hello man
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B hello
prints a rounded box, 47 columns wide, titled with the user and host name.
Each line inside starts with an emoji: a greeting for the time of day, the
date and time, the current weather, the OS release and kernel, memory used
and disk free on /, the desktop session, pending updates, installed
packages and the track currently playing.
.PP
Lines whose source is disabled or empty are left out. Long values are cut
to fit and end in "...".
`)
}

func writeOptions(b *strings.Builder) {
	b.WriteString(".SH OPTIONS\n")

	flags := []struct {
		flag  string
		short string
		arg   string
		desc  string
	}{
		{"config", "c", "PATH", "Path to the configuration file. The extension selects the format: .json, .yaml, .yml or .toml."},
		{"verbose", "v", "", "Log at debug level on stderr, including every package manager command and its count."},
		{"no\\-color", "", "", "Disable colored output. Color is also disabled when NO_COLOR is set or stdout is not a terminal."},
		{"version", "", "", "Print the version, commit hash and build date, then exit."},
		{"help", "h", "", "Print usage and exit."},
	}

	for _, f := range flags {
		b.WriteString(".TP\n")
		name := "\\-\\-" + f.flag
		if f.short != "" {
			name = "\\-" + f.short + ", " + name
		}
		if f.arg != "" {
			fmt.Fprintf(b, ".BR \"%s\" \" \\fI%s\\fR\"\n", name, f.arg)
		} else {
			fmt.Fprintf(b, ".B %s\n", name)
		}
		b.WriteString(f.desc + "\n")
	}
}

func writeCommands(b *strings.Builder) {
	b.WriteString(`.SH COMMANDS
.TP
.BI "init " SHELL
Print a snippet that runs
.B hello
when an interactive shell starts, once per terminal. SHELL is one of bash,
zsh, fish or nushell. The \fB\-\-config\fR flag, when given, is baked
into the snippet.
.TP
.B man
Print this page in roff format.
`)
}

func writeConfiguration(b *strings.Builder) {
	b.WriteString(`.SH CONFIGURATION
All keys except hostname, song and package_managers are required.
.TP
.B name
Name used in the greeting.
.TP
.B hostname
Frame title. Defaults to \fIuser\fR@\fIhost\fR.
.TP
.B location
City passed to OpenWeatherMap.
.TP
.B units
"metric" for Celsius, "imperial" for Fahrenheit.
.TP
.B lang
Language code for the weather description.
.TP
.B api_key
OpenWeatherMap API key.
.TP
.B time_format
"12h" or "24h". Any other value shows the date only.
.TP
.B song
Set to false to skip the playerctl query. Default: true.
.TP
.B package_managers
List of package managers to query. An empty or missing list hides the
update and package lines.
`)
}

func writePackageManagers(b *strings.Builder, reg *pkgmgr.Registry) {
	b.WriteString(`.SH PACKAGE MANAGERS
Every configured manager is queried concurrently and the counts are added.
A manager whose command fails counts as zero. An unknown name is an error.
`)
	for _, id := range reg.IDs() {
		fmt.Fprintf(b, ".TP\n.B %s\n", roffEscape(string(id)))
		for _, intent := range []pkgmgr.Intent{pkgmgr.CountUpdates, pkgmgr.CountInstalled} {
			spec, err := reg.Spec(id, intent)
			if err != nil {
				continue
			}
			fmt.Fprintf(b, "%s: \\fB%s\\fR\n.br\n", intent, roffEscape(spec.String()))
		}
	}
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/hello/config.json
Default configuration file. $XDG_CONFIG_HOME replaces ~/.config when set.
.TP
.I /etc/os\-release
Source of the release name.
`)
}

func writeEnvironment(b *strings.Builder) {
	fmt.Fprintf(b, `.SH ENVIRONMENT
.TP
.B NO_COLOR
Disable colored output when set to any value.
.TP
.B %s
Log level on stderr: debug, info, warn or error. Default: error.
.TP
.B XDG_CONFIG_HOME
Base directory for the default configuration file.
.TP
.B XDG_CURRENT_DESKTOP
Desktop session shown on the desktop line.
`, roffEscape(logging.EnvLevel))
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(`.SH EXIT STATUS
.TP
.B 0
The greeting was printed.
.TP
.B 1
The configuration could not be loaded, a required fact (weather, memory,
disk, release, kernel) was unavailable, or a package manager name is not
supported.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
.PP
Greet on every new Bash terminal:
.PP
.RS 4
.nf
echo 'eval "$(hello init bash)"' >> ~/.bashrc
.fi
.RE
.PP
Debug slow package manager queries:
.PP
.RS 4
.nf
hello \-v
.fi
.RE
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, `.SH VERSION
hello %s (commit %s, built %s)
`, roffEscape(version), roffEscape(commit), roffEscape(date))
}

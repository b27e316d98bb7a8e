// Package pkgmgr counts outstanding updates and installed packages across
// one or more system package managers.
//
// Each configured manager is queried by its own external command, run
// concurrently, and its output is reduced to an integer. Per-manager failures
// are logged and contribute zero to the total; only configuration mistakes
// (an unknown manager) are reported to the caller.
package pkgmgr

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies a package manager, e.g. "pacman" or "apt".
type ID string

// Known package managers.
const (
	Pacman  ID = "pacman"
	Apt     ID = "apt"
	Xbps    ID = "xbps"
	Portage ID = "portage"
	Apk     ID = "apk"
	Dnf     ID = "dnf"
	Flatpak ID = "flatpak"
	Snap    ID = "snap"
)

// Intent selects which number a manager is asked for.
type Intent int

const (
	// CountUpdates asks for the number of pending upgrades.
	CountUpdates Intent = iota
	// CountInstalled asks for the number of installed packages.
	CountInstalled
)

// String returns the intent name used in log events.
func (i Intent) String() string {
	switch i {
	case CountUpdates:
		return "updates"
	case CountInstalled:
		return "installed"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Count is a package count reported by one or more managers.
type Count int

// Disabled is returned when no package managers are configured.
// It is distinct from a real zero count.
const Disabled Count = -1

// ParserKind selects how a command's stdout is reduced to a Count.
type ParserKind int

const (
	// ParseLines counts non-empty lines after skipping a fixed header.
	ParseLines ParserKind = iota
	// ParseSentinel understands eix output: a "no matches" trailer, a bare
	// integer, or a list of packages.
	ParseSentinel
)

// NoMatchesSentinel is the trailer eix prints when nothing matched.
const NoMatchesSentinel = "no matches"

// CommandSpec describes the external command that answers one intent for
// one manager, and how to interpret what it prints.
type CommandSpec struct {
	Name          string
	Args          []string
	Parser        ParserKind
	SkipLines     int
	AcceptedExits []int
	Sentinel      string
}

// Accepts reports whether exit code is a success for this command.
// An empty AcceptedExits list accepts only zero.
func (s CommandSpec) Accepts(code int) bool {
	if len(s.AcceptedExits) == 0 {
		return code == 0
	}
	for _, c := range s.AcceptedExits {
		if c == code {
			return true
		}
	}
	return false
}

// String renders the command line for log events.
func (s CommandSpec) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + " " + strings.Join(s.Args, " ")
}

// ErrUnknownIntent is returned for an Intent outside CountUpdates and
// CountInstalled.
var ErrUnknownIntent = errors.New("unknown intent")

// UnsupportedManagerError is returned for an identifier missing from the
// registry. It is a configuration error and aborts the whole query.
type UnsupportedManagerError struct {
	ID         ID
	Suggestion ID
}

func (e *UnsupportedManagerError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unsupported package manager %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("unsupported package manager %q", e.ID)
}

// ParseError is returned when a command's output cannot be interpreted.
type ParseError struct {
	Command string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s output: %s", e.Command, e.Reason)
}

// UnitError records the failure of one manager's command. The multiplexer
// logs it and counts the manager as zero.
type UnitError struct {
	ID     ID
	Intent Intent
	Err    error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.ID, e.Intent, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// ExitCodeError reports an exit status outside a command's accepted set.
type ExitCodeError struct {
	Command string
	Code    int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

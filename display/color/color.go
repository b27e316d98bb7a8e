// Package color decides whether the greeter may emit ANSI colour.
//
// It honours NO_COLOR (https://no-color.org/), the --no-color flag and
// pipe/redirect detection. When colour is off, lipgloss is switched to the
// Ascii profile so every styled render is plain text.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// isTerminal allows injection of TTY detection for testing.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ShouldDisableColor returns true if NO_COLOR is set (to any value) or
// stdout is not a terminal.
func ShouldDisableColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !isTerminal(os.Stdout.Fd())
}

// Apply configures the global lipgloss renderer. forceOff comes from the
// --no-color flag. Returns true if colour is enabled.
func Apply(forceOff bool) bool {
	if forceOff || ShouldDisableColor() {
		ForceDisable()
		return false
	}
	return true
}

// ForceDisable sets the lipgloss colour profile to Ascii.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

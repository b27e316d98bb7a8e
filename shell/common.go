// Package shell generates the rc snippets that show the hello greeting when
// an interactive shell starts.
//
// Each supported shell gets a generator that produces a snippet users can
// source in their shell RC file (~/.bashrc, ~/.zshrc, etc.). The snippet
// greets once per terminal: nested shells inherit HELLO_GREETED and stay
// quiet.
package shell

import (
	"fmt"
	"strings"
)

// GuardVar is exported by the snippets after the greeting has been shown.
const GuardVar = "HELLO_GREETED"

// ShellType identifies a supported shell.
type ShellType int

const (
	// Bash is the Bourne Again Shell.
	Bash ShellType = iota
	// Zsh is the Z Shell.
	Zsh
	// Fish is the Friendly Interactive Shell.
	Fish
	// Nushell is the Nu shell.
	Nushell
)

// String returns the lowercase name of the shell type.
func (s ShellType) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	case Nushell:
		return "nushell"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Names lists the accepted shell names.
func Names() []string {
	return []string{"bash", "zsh", "fish", "nushell"}
}

// ParseShellType maps a shell name, as printed by String, to its type.
// "nu" is accepted as an alias for nushell.
func ParseShellType(name string) (ShellType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "nushell", "nu":
		return Nushell, nil
	default:
		return 0, fmt.Errorf("unsupported shell %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
}

// IntegrationConfig controls how the generated snippet invokes hello.
type IntegrationConfig struct {
	// BinaryPath is the path to the hello binary.
	BinaryPath string
	// ConfigPath, when set, is passed with --config.
	ConfigPath string
}

// DefaultIntegrationConfig assumes hello is on PATH and uses the default
// configuration location.
func DefaultIntegrationConfig() IntegrationConfig {
	return IntegrationConfig{
		BinaryPath: "hello",
	}
}

// command returns the hello invocation for the snippet.
func (c IntegrationConfig) command() string {
	bin := c.BinaryPath
	if bin == "" {
		bin = "hello"
	}
	if c.ConfigPath == "" {
		return bin
	}
	return fmt.Sprintf("%s --config %q", bin, c.ConfigPath)
}

// GenerateIntegration dispatches to the appropriate shell-specific generator.
func GenerateIntegration(shell ShellType, cfg IntegrationConfig) (string, error) {
	switch shell {
	case Bash:
		return GenerateBashIntegration(cfg), nil
	case Zsh:
		return GenerateZshIntegration(cfg), nil
	case Fish:
		return GenerateFishIntegration(cfg), nil
	case Nushell:
		return GenerateNushellIntegration(cfg), nil
	default:
		return "", fmt.Errorf("%s integration is not implemented", shell)
	}
}

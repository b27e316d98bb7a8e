package shell

import "fmt"

// GenerateZshIntegration returns a Zsh snippet. Source the output in
// ~/.zshrc, before any instant-prompt block that forbids console output.
func GenerateZshIntegration(cfg IntegrationConfig) string {
	return fmt.Sprintf(`# hello greeting for Zsh
# Source this in your ~/.zshrc

if [[ -o interactive && -z "${%[2]s:-}" ]]; then
    export %[2]s=1
    %[1]s
fi

# Show the greeting again
hello-again() {
    %[1]s "$@"
}
`, cfg.command(), GuardVar)
}

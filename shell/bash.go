package shell

import "fmt"

// GenerateBashIntegration returns a Bash snippet. Source the output in
// ~/.bashrc.
func GenerateBashIntegration(cfg IntegrationConfig) string {
	return fmt.Sprintf(`# hello greeting for Bash
# Source this in your ~/.bashrc

if [[ $- == *i* && -z "${%[2]s:-}" ]]; then
    export %[2]s=1
    %[1]s
fi

# Show the greeting again
hello-again() {
    %[1]s "$@"
}
`, cfg.command(), GuardVar)
}

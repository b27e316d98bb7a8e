package shell

import "fmt"

// GenerateNushellIntegration returns a Nushell snippet. Nushell has no
// "is interactive" test in config.nu, so the snippet relies on config.nu
// only being read by interactive sessions.
func GenerateNushellIntegration(cfg IntegrationConfig) string {
	return fmt.Sprintf(`# hello greeting for Nushell
# Source this from your config.nu

if ($env.%[2]s? | is-empty) {
    $env.%[2]s = "1"
    ^%[1]s
}

# Show the greeting again
def hello-again [] {
    ^%[1]s
}
`, cfg.command(), GuardVar)
}

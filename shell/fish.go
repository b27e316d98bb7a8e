package shell

import "fmt"

// GenerateFishIntegration returns a Fish snippet with the greeting and
// completions for the hello flags. Source it from ~/.config/fish/config.fish.
func GenerateFishIntegration(cfg IntegrationConfig) string {
	bin := cfg.BinaryPath
	if bin == "" {
		bin = "hello"
	}
	return fmt.Sprintf(`# hello greeting for Fish

if status is-interactive; and not set -q %[2]s
    set -gx %[2]s 1
    %[1]s
end

# Show the greeting again
function hello-again -d "Show the hello greeting"
    %[1]s $argv
end

# Completions
complete -c %[3]s -s c -l config -d "Config file path" -rF
complete -c %[3]s -s v -l verbose -d "Verbose logging"
complete -c %[3]s -l no-color -d "Disable colored output"
complete -c %[3]s -l version -d "Show version"
`, cfg.command(), GuardVar, bin)
}

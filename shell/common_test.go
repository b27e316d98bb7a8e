package shell

import (
	"strings"
	"testing"
)

func TestShellType_String(t *testing.T) {
	tests := []struct {
		shell ShellType
		want  string
	}{
		{Bash, "bash"},
		{Zsh, "zsh"},
		{Fish, "fish"},
		{Nushell, "nushell"},
		{ShellType(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.shell.String(); got != tt.want {
				t.Errorf("ShellType(%d).String() = %q, want %q", tt.shell, got, tt.want)
			}
		})
	}
}

func TestParseShellType(t *testing.T) {
	tests := []struct {
		in      string
		want    ShellType
		wantErr bool
	}{
		{"bash", Bash, false},
		{"ZSH", Zsh, false},
		{" fish ", Fish, false},
		{"nu", Nushell, false},
		{"nushell", Nushell, false},
		{"tcsh", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShellType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseShellType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseShellType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateIntegration(t *testing.T) {
	tests := []struct {
		shell ShellType
		want  []string
	}{
		{Bash, []string{"# hello greeting for Bash", "[[ $- == *i*", "export HELLO_GREETED=1", "hello-again()"}},
		{Zsh, []string{"# hello greeting for Zsh", "-o interactive", "export HELLO_GREETED=1"}},
		{Fish, []string{"status is-interactive", "set -gx HELLO_GREETED 1", "complete -c hello -l no-color"}},
		{Nushell, []string{"$env.HELLO_GREETED?", "def hello-again"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			out, err := GenerateIntegration(tt.shell, DefaultIntegrationConfig())
			if err != nil {
				t.Fatalf("GenerateIntegration() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if strings.Contains(out, "%!") {
				t.Errorf("output has a formatting error:\n%s", out)
			}
		})
	}
}

func TestGenerateIntegration_Unknown(t *testing.T) {
	if _, err := GenerateIntegration(ShellType(42), DefaultIntegrationConfig()); err == nil {
		t.Error("GenerateIntegration(42) error = nil, want error")
	}
}

func TestIntegrationConfig_Command(t *testing.T) {
	tests := []struct {
		cfg  IntegrationConfig
		want string
	}{
		{DefaultIntegrationConfig(), "hello"},
		{IntegrationConfig{}, "hello"},
		{IntegrationConfig{BinaryPath: "/usr/local/bin/hello"}, "/usr/local/bin/hello"},
		{IntegrationConfig{BinaryPath: "hello", ConfigPath: "/home/a/hello.toml"}, `hello --config "/home/a/hello.toml"`},
	}
	for _, tt := range tests {
		if got := tt.cfg.command(); got != tt.want {
			t.Errorf("command() = %q, want %q", got, tt.want)
		}
	}
}

func TestGenerateBashIntegration_CustomConfig(t *testing.T) {
	out := GenerateBashIntegration(IntegrationConfig{BinaryPath: "hello", ConfigPath: "/etc/hello.json"})
	if !strings.Contains(out, `hello --config "/etc/hello.json"`) {
		t.Errorf("custom config not passed:\n%s", out)
	}
}

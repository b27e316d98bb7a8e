package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const validJSON = `{
  "name": "Alice",
  "location": "Berlin",
  "units": "metric",
  "lang": "en",
  "api_key": "secret",
  "time_format": "24h",
  "package_managers": ["pacman", "flatpak"]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.json", validJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "Alice" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Alice")
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret")
	}
	if want := (PackageManagers{"pacman", "flatpak"}); !reflect.DeepEqual(cfg.PackageManagers, want) {
		t.Errorf("PackageManagers = %v, want %v", cfg.PackageManagers, want)
	}
	if !cfg.SongEnabled() {
		t.Error("SongEnabled() = false, want true when song is absent")
	}
	if cfg.Hostname != "" {
		t.Errorf("Hostname = %q, want empty", cfg.Hostname)
	}
}

func TestLoad_YAML(t *testing.T) {
	content := `name: Bob
hostname: workstation
location: Oslo
units: imperial
lang: nb
api_key: k
time_format: 12h
song: false
package_managers: apt
`
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			cfg, err := Load(writeFile(t, "config"+ext, content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Hostname != "workstation" {
				t.Errorf("Hostname = %q, want %q", cfg.Hostname, "workstation")
			}
			if cfg.SongEnabled() {
				t.Error("SongEnabled() = true, want false")
			}
			if want := (PackageManagers{"apt"}); !reflect.DeepEqual(cfg.PackageManagers, want) {
				t.Errorf("PackageManagers = %v, want %v", cfg.PackageManagers, want)
			}
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	content := `name = "Carol"
location = "Lyon"
units = "metric"
lang = "fr"
api_key = "k"
time_format = "off"
song = true
package_managers = ["dnf", "snap"]
`
	cfg, err := Load(writeFile(t, "config.toml", content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Lang != "fr" {
		t.Errorf("Lang = %q, want %q", cfg.Lang, "fr")
	}
	if want := (PackageManagers{"dnf", "snap"}); !reflect.DeepEqual(cfg.PackageManagers, want) {
		t.Errorf("PackageManagers = %v, want %v", cfg.PackageManagers, want)
	}
}

func TestPackageManagers_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		want   PackageManagers
	}{
		{"json string", "json", `{"package_managers": "pacman"}`, PackageManagers{"pacman"}},
		{"json list", "json", `{"package_managers": ["pacman", "apt"]}`, PackageManagers{"pacman", "apt"}},
		{"json null", "json", `{"package_managers": null}`, nil},
		{"json absent", "json", `{}`, nil},
		{"json empty list", "json", `{"package_managers": []}`, PackageManagers{}},
		{"yaml string", "yaml", "package_managers: xbps\n", PackageManagers{"xbps"}},
		{"yaml list", "yaml", "package_managers:\n  - apk\n  - portage\n", PackageManagers{"apk", "portage"}},
		{"yaml null", "yaml", "package_managers: ~\n", nil},
		{"toml string", "toml", `package_managers = "apk"`, PackageManagers{"apk"}},
		{"toml list", "toml", `package_managers = ["apk"]`, PackageManagers{"apk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(cfg.PackageManagers) != len(tt.want) {
				t.Fatalf("PackageManagers = %v, want %v", cfg.PackageManagers, tt.want)
			}
			for i := range tt.want {
				if cfg.PackageManagers[i] != tt.want[i] {
					t.Errorf("PackageManagers[%d] = %q, want %q", i, cfg.PackageManagers[i], tt.want[i])
				}
			}
		})
	}
}

func TestPackageManagers_Invalid(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{"json", `{"package_managers": 5}`},
		{"json", `{"package_managers": {"a": 1}}`},
		{"yaml", "package_managers:\n  a: 1\n"},
		{"toml", `package_managers = 5`},
		{"toml", `package_managers = [1, 2]`},
	}

	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data), tt.format); err == nil {
			t.Errorf("Parse(%s %q) error = nil, want error", tt.format, tt.data)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		op   Op
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			op:   OpRead,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeFile(t, "config.json", `{"name": `) },
			op:   OpParse,
		},
		{
			name: "malformed toml",
			path: func(t *testing.T) string { return writeFile(t, "config.toml", `name = `) },
			op:   OpParse,
		},
		{
			name: "missing keys",
			path: func(t *testing.T) string { return writeFile(t, "config.json", `{"name": "Alice"}`) },
			op:   OpValidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("Load() error = %v, want *Error", err)
			}
			if cerr.Op != tt.op {
				t.Errorf("Op = %q, want %q", cerr.Op, tt.op)
			}
		})
	}
}

func TestValidate_ListsMissingKeys(t *testing.T) {
	cfg := &Config{Name: "Alice", Location: "Berlin"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	for _, key := range []string{"units", "lang", "api_key", "time_format"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() error %q does not mention %s", err, key)
		}
	}
	if strings.Contains(err.Error(), "location") {
		t.Errorf("Validate() error %q mentions a present key", err)
	}
}

func TestValidate_EmptyManagerName(t *testing.T) {
	cfg, err := Parse([]byte(validJSON), "json")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cfg.PackageManagers = PackageManagers{"pacman", " "}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for blank manager")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := DefaultPath(), filepath.Join("/tmp/xdg", "hello", "config.json"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/alice")
	if got, want := DefaultPath(), filepath.Join("/home/alice", ".config", "hello", "config.json"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	tests := map[string]string{
		"config.json":  "json",
		"config.YAML":  "yaml",
		"config.yml":   "yaml",
		"config.toml":  "toml",
		"config":       "json",
		"/etc/hello.d": "json",
	}
	for path, want := range tests {
		if got := Format(path); got != want {
			t.Errorf("Format(%q) = %q, want %q", path, got, want)
		}
	}
}

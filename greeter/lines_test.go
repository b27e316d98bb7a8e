package greeter

import (
	"testing"
	"time"

	"gitlab.com/tinyland/lab/hello/collectors/pkgmgr"
)

func TestGreetingFor(t *testing.T) {
	tests := []struct {
		hour int
		icon string
		text string
	}{
		{0, "🌃", "Good night"},
		{5, "🌃", "Good night"},
		{6, "🌇", "Good morning"},
		{11, "🌇", "Good morning"},
		{12, "🏙️", "Good afternoon"},
		{17, "🏙️", "Good afternoon"},
		{18, "🌆", "Good evening"},
		{22, "🌆", "Good evening"},
		{23, "🌃", "Good night"},
	}
	for _, tt := range tests {
		icon, text := greetingFor(tt.hour)
		if icon != tt.icon || text != tt.text {
			t.Errorf("greetingFor(%d) = %q %q, want %q %q", tt.hour, icon, text, tt.icon, tt.text)
		}
	}
}

func TestDateTimeLine(t *testing.T) {
	tests := []struct {
		at     time.Time
		format string
		icon   string
		text   string
	}{
		{time.Date(2026, time.October, 19, 14, 2, 0, 0, time.UTC), "24h", "🕑", "October 19th, 14:02"},
		{time.Date(2026, time.March, 1, 9, 5, 0, 0, time.UTC), "12h", "🕘", "March 1st, 9:05 AM"},
		{time.Date(2026, time.January, 31, 0, 30, 0, 0, time.UTC), "12h", "🕛", "January 31st, 12:30 AM"},
		{time.Date(2026, time.May, 22, 23, 59, 0, 0, time.UTC), "off", "🕚", "May 22nd"},
	}
	for _, tt := range tests {
		line := dateTimeLine(tt.at, tt.format)
		if line.Icon != tt.icon || line.Text != tt.text {
			t.Errorf("dateTimeLine(%v, %s) = %q %q, want %q %q", tt.at, tt.format, line.Icon, line.Text, tt.icon, tt.text)
		}
	}
}

func TestUpdatesLine(t *testing.T) {
	tests := []struct {
		n       pkgmgr.Count
		content string
		shown   bool
	}{
		{pkgmgr.Disabled, "", false},
		{0, "☑️ Up to date", true},
		{1, "1️⃣ 1 update", true},
		{2, "2️⃣ 2 updates", true},
		{9, "9️⃣ 9 updates", true},
		{10, "🔟 10 updates", true},
		{11, "‼️ 11 updates", true},
		{250, "‼️ 250 updates", true},
	}
	for _, tt := range tests {
		line := updatesLine(tt.n)
		if line.Shown() != tt.shown {
			t.Errorf("updatesLine(%d).Shown() = %v, want %v", tt.n, line.Shown(), tt.shown)
		}
		if tt.shown && line.Content() != tt.content {
			t.Errorf("updatesLine(%d) = %q, want %q", tt.n, line.Content(), tt.content)
		}
	}
}

func TestPackagesLine(t *testing.T) {
	tests := []struct {
		n       pkgmgr.Count
		content string
		shown   bool
	}{
		{pkgmgr.Disabled, "", false},
		{0, "📦 No packages", true},
		{1, "📦 1 package", true},
		{2, "📦 2 packages", true},
		{1204, "📦 1204 packages", true},
	}
	for _, tt := range tests {
		line := packagesLine(tt.n)
		if line.Shown() != tt.shown {
			t.Errorf("packagesLine(%d).Shown() = %v, want %v", tt.n, line.Shown(), tt.shown)
		}
		if tt.shown && line.Content() != tt.content {
			t.Errorf("packagesLine(%d) = %q, want %q", tt.n, line.Content(), tt.content)
		}
	}
}

func TestGreetingLine(t *testing.T) {
	at := func(hour int) time.Time { return time.Date(2026, time.October, 19, hour, 0, 0, 0, time.UTC) }

	tests := []struct {
		hour int
		name string
		want string
	}{
		{14, "Alice", "🏙️ Good afternoon, Alice!"},
		{8, "Alice", "🌇 Good morning, Alice!"},
		{14, "Bartholomew Featherstonehaugh", "🏙️ Good afternoon, Bartholomew Feathers...!"},
		{23, "Bartholomew Featherstonehaugh", "🌃 Good night, Bartholomew Featherstone...!"},
	}
	for _, tt := range tests {
		if got := greetingLine(at(tt.hour), tt.name, 37).Content(); got != tt.want {
			t.Errorf("greetingLine(%d, %q) = %q, want %q", tt.hour, tt.name, got, tt.want)
		}
	}
}

func TestDesktopLine(t *testing.T) {
	tests := []struct {
		in      string
		content string
		shown   bool
	}{
		{"gnome", "🖥️ Gnome", true},
		{"KDE", "🖥️ KDE", true},
		{"ubuntu:GNOME:ubuntu-wayland-session-extended", "🖥️ Ubuntu:GNOME:ubuntu-wayland-session-e...", true},
		{"", "", false},
	}
	for _, tt := range tests {
		line := desktopLine(tt.in, 37)
		if line.Shown() != tt.shown {
			t.Errorf("desktopLine(%q).Shown() = %v, want %v", tt.in, line.Shown(), tt.shown)
		}
		if tt.shown && line.Content() != tt.content {
			t.Errorf("desktopLine(%q) = %q, want %q", tt.in, line.Content(), tt.content)
		}
	}
}

func TestMediaLine_Truncates(t *testing.T) {
	line := mediaLine("Godspeed You! Black Emperor - Storm (Lift Your Skinny Fists)", 37)
	if got := line.Text; got != "Godspeed You! Black Emperor - Storm (..." {
		t.Errorf("mediaLine text = %q", got)
	}
	if !line.Shown() {
		t.Error("mediaLine should be shown")
	}
	if mediaLine("", 37).Shown() {
		t.Error("empty mediaLine should be hidden")
	}
}

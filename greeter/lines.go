package greeter

import (
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/hello/collectors/pkgmgr"
	"gitlab.com/tinyland/lab/hello/display/banner"
	"gitlab.com/tinyland/lab/hello/internal/format"
)

// Row icons.
const (
	iconRelease  = "💻"
	iconKernel   = "🫀"
	iconMemory   = "🧠"
	iconDisk     = "💾"
	iconDesktop  = "🖥️"
	iconPackages = "📦"
	iconMedia    = "🎵"
	iconUpToDate = "☑️"
	iconMany     = "‼️"
)

// noneUpdates marks the update row as hidden.
const noneUpdates = pkgmgr.Disabled

// keycaps holds the icons for 1 through 10 pending updates.
var keycaps = [...]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// clockFaces is indexed by hour modulo 12.
var clockFaces = [...]string{"🕛", "🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚"}

// greetingFor returns the icon and salutation for the hour of day.
func greetingFor(hour int) (string, string) {
	switch {
	case hour >= 6 && hour <= 11:
		return "🌇", "Good morning"
	case hour >= 12 && hour <= 17:
		return "🏙️", "Good afternoon"
	case hour >= 18 && hour <= 22:
		return "🌆", "Good evening"
	default:
		return "🌃", "Good night"
	}
}

// greetingLine caps name so that the salutation, the separator and the
// closing "!" stay within budget.
func greetingLine(now time.Time, name string, budget int) banner.DisplayLine {
	icon, salutation := greetingFor(now.Hour())
	room := budget - format.GraphemeLen(salutation) - len(", !")
	return banner.DisplayLine{Icon: icon, Text: fmt.Sprintf("%s, %s!", salutation, format.TruncateGraphemes(name, room))}
}

func dateTimeLine(now time.Time, timeFormat string) banner.DisplayLine {
	text := format.FormatDate(now)
	if clock := format.FormatClock(now, timeFormat); clock != "" {
		text += ", " + clock
	}
	return banner.DisplayLine{Icon: clockFaces[now.Hour()%12], Text: text}
}

func updatesLine(n pkgmgr.Count) banner.DisplayLine {
	line := banner.DisplayLine{Visible: func() bool { return n != noneUpdates }}
	switch {
	case n <= 0:
		line.Icon, line.Text = iconUpToDate, "Up to date"
	case n == 1:
		line.Icon, line.Text = keycaps[0], "1 update"
	case int(n) <= len(keycaps):
		line.Icon, line.Text = keycaps[n-1], fmt.Sprintf("%d updates", n)
	default:
		line.Icon, line.Text = iconMany, fmt.Sprintf("%d updates", n)
	}
	return line
}

func packagesLine(n pkgmgr.Count) banner.DisplayLine {
	line := banner.DisplayLine{Icon: iconPackages, Visible: func() bool { return n != pkgmgr.Disabled }}
	switch {
	case n <= 0:
		line.Text = "No packages"
	case n == 1:
		line.Text = "1 package"
	default:
		line.Text = fmt.Sprintf("%d packages", n)
	}
	return line
}

func desktopLine(de string, budget int) banner.DisplayLine {
	return banner.DisplayLine{
		Icon:    iconDesktop,
		Text:    format.TruncateGraphemes(format.Capitalize(de), budget),
		Visible: func() bool { return de != "" },
	}
}

func mediaLine(track string, budget int) banner.DisplayLine {
	return banner.DisplayLine{
		Icon:    iconMedia,
		Text:    format.TruncateGraphemes(track, budget),
		Visible: func() bool { return track != "" },
	}
}

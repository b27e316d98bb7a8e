package weather

// UnknownIcon is shown for icon codes missing from the table.
const UnknownIcon = "❓"

var iconEmoji = map[string]string{
	"01d": "☀️",
	"01n": "🌙",
	"02d": "⛅️",
	"02n": "🌙",
	"03d": "☁️",
	"03n": "☁️",
	"04d": "☁️",
	"04n": "☁️",
	"09d": "🌧️",
	"09n": "🌧️",
	"10d": "🌧️",
	"10n": "🌧️",
	"11d": "⛈️",
	"11n": "⛈️",
	"13d": "🌨️",
	"13n": "🌨️",
	"40d": "🌫️",
	"40n": "🌫️",
	"50d": "🌫️",
	"50n": "🌫️",
}

// IconEmoji maps an OpenWeatherMap icon code to an emoji.
func IconEmoji(code string) string {
	if e, ok := iconEmoji[code]; ok {
		return e
	}
	return UnknownIcon
}

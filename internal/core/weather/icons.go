package weather

// DefaultIcon is used for codes outside the table
const DefaultIcon = "cloud.fill"

var iconTable = map[string]string{
	"01d": "sun.max.fill",
	"01n": "moon.fill",
	"02d": "cloud.sun.fill",
	"02n": "cloud.moon.fill",
	"03d": "cloud.fill",
	"03n": "cloud.fill",
	"04d": "cloud.fill",
	"04n": "cloud.fill",
	"09d": "cloud.drizzle.fill",
	"09n": "cloud.drizzle.fill",
	"10d": "cloud.rain.fill",
	"10n": "cloud.rain.fill",
	"11d": "cloud.bolt.rain.fill",
	"11n": "cloud.bolt.rain.fill",
	"13d": "snow",
	"13n": "snow",
	"50d": "cloud.fog.fill",
	"50n": "cloud.fog.fill",
}

// IconFor maps an upstream icon code to a display icon name. Total: unknown
// and empty codes map to DefaultIcon.
func IconFor(code string) string {
	if icon, ok := iconTable[code]; ok {
		return icon
	}
	return DefaultIcon
}

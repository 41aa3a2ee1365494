package validation

import (
	"strings"
)

var supportedUnits = map[string]struct{}{
	"metric":   {},
	"imperial": {},
	"standard": {},
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidUnits reports whether units is one of the OpenWeatherMap unit systems
func IsValidUnits(units string) bool {
	_, ok := supportedUnits[strings.ToLower(strings.TrimSpace(units))]
	return ok
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

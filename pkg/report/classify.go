package report

import "strings"

// ClassifyLabel maps a free-form report type label to a TypeID using
// case-insensitive substring matching. The checks run in a fixed priority
// order and the first match wins; anything unrecognized falls through to
// the consumption summary. Kept for compatibility with stored job rows
// that only carry the display label — new callers should pass a TypeID.
func ClassifyLabel(label string) TypeID {
	id := strings.ToLower(label)
	switch {
	case strings.Contains(id, "hot") || strings.Contains(id, "cold"):
		return TypeHotCold
	case strings.Contains(id, "meter status"):
		return TypeMeterStatus
	case strings.Contains(id, "alert") || strings.Contains(id, "event"):
		return TypeAlertEventLog
	case strings.Contains(id, "battery"):
		return TypeBattery
	case strings.Contains(id, "zone comparison"):
		return TypeZoneComparison
	case strings.Contains(id, "building comparison"):
		return TypeBuildingComparison
	case strings.Contains(id, "raw"):
		return TypeRawReadings
	default:
		return TypeConsumptionSummary
	}
}

// ResolveType accepts either a catalogue id or a display label.
func ResolveType(s string) TypeID {
	for _, def := range Catalog() {
		if string(def.Id) == s {
			return def.Id
		}
	}
	return ClassifyLabel(s)
}

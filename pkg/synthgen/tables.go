// Synthetic series generators for the sub-dashboards.
// These replace the need for a historical data store by deriving
// plausible series from what is already on the meter record.
package synthgen

import "time"

const (
	DefaultTrendDays    = 30
	DefaultReadingCount = 48
)

// 30-day daily multiplier pattern (higher on weekends – every 6th/7th day)
var dailyPattern = [30]float64{
	1.00, 1.10, 0.90, 1.00, 0.95, 1.20, 1.30,
	1.00, 1.05, 0.90, 1.10, 1.00, 1.30, 1.25,
	0.95, 1.00, 1.05, 0.90, 1.10, 1.20, 1.30,
	1.05, 0.95, 1.00, 1.10, 0.90, 1.20, 1.25,
	1.00, 1.05,
}

// 24-h usage multiplier relative to mean (peak morning + evening)
var hourlyMult = [24]float64{
	0.30, 0.20, 0.15, 0.10, 0.20, 0.35,
	0.55, 1.10, 1.25, 0.90, 0.75, 0.65,
	0.75, 0.60, 0.65, 0.75, 0.70, 0.80,
	0.90, 1.20, 1.30, 1.05, 0.75, 0.55,
}

// Fixed reference instant so every caller fabricates the same window.
var (
	refInstant = time.Date(2026, time.February, 19, 23, 0, 0, 0, time.UTC)
	refDay     = time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)
)

// DailyMultiplier exposes the pattern for aggregate sparkline fabrication.
func DailyMultiplier(i int) float64 {
	return dailyPattern[i%len(dailyPattern)]
}

// HourlyMultiplier exposes the diurnal pattern for profile fabrication.
func HourlyMultiplier(hour int) float64 {
	return hourlyMult[((hour%24)+24)%24]
}

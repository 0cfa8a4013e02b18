package render

import (
	"fmt"
	"math"
)

// Pace formats a pace in min/km as "m:ss/km".
func Pace(minPerKm float64) string {
	totalSec := int(math.Round(minPerKm * 60))
	return fmt.Sprintf("%d:%02d/km", totalSec/60, totalSec%60)
}

// Duration formats a duration in seconds as "1h 23m 45s", dropping leading
// zero units.
func Duration(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// Km formats meters as kilometers with two decimals.
func Km(meters float64) string {
	return fmt.Sprintf("%.2f km", meters/1000)
}

// SpeedKmh formats a speed in m/s as km/h.
func SpeedKmh(metersPerSec float64) string {
	return fmt.Sprintf("%.1f km/h", metersPerSec*3.6)
}

// signedPercent formats a percent change with an explicit sign.
func signedPercent(change float64) string {
	return fmt.Sprintf("%+.1f%%", change)
}

package analysis

import "stride/internal/strava"

// DerivedMetrics holds the per-activity values the comparator works with.
// Pace and Speed are nil when the activity has no usable distance or speed
// (indoor trainer, manual entry); nil metrics are excluded from every
// aggregate, never treated as zero.
type DerivedMetrics struct {
	DistanceKm    float64
	TimeMin       float64
	Pace          *float64 // min/km
	Speed         *float64 // km/h
	AvgHR         *float64 // bpm
	MaxHR         *float64 // bpm
	ElevationGain float64  // meters
	Calories      *float64
}

// Metrics derives the comparison metrics for a single activity.
func Metrics(a strava.Activity) DerivedMetrics {
	m := DerivedMetrics{
		DistanceKm:    a.Distance / 1000,
		TimeMin:       float64(a.MovingTime) / 60,
		AvgHR:         a.AverageHeartrate,
		MaxHR:         a.MaxHeartrate,
		ElevationGain: a.TotalElevationGain,
		Calories:      a.Calories,
	}

	if m.DistanceKm > 0 {
		pace := m.TimeMin / m.DistanceKm
		m.Pace = &pace
	}
	if a.AverageSpeed > 0 {
		speed := a.AverageSpeed * 3.6
		m.Speed = &speed
	}
	return m
}

// FilterByType returns the activities matching activityType, preserving the
// input order. The API returns most-recent-first and the window split relies
// on that ordering; no re-sorting happens here.
func FilterByType(activities []strava.Activity, activityType string) []strava.Activity {
	var out []strava.Activity
	for _, a := range activities {
		if a.Type == activityType {
			out = append(out, a)
		}
	}
	return out
}

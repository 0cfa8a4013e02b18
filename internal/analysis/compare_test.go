package analysis

import (
	"errors"
	"math"
	"testing"

	"stride/internal/strava"
)

func fptr(v float64) *float64 { return &v }

// run builds a running activity. movingSec of 0 yields a zero-distance,
// zero-speed manual entry.
func run(id int64, date string, distanceM float64, movingSec int, avgHR *float64) strava.Activity {
	a := strava.Activity{
		ID:               id,
		Name:             "Morning Run",
		Type:             "Run",
		StartDateLocal:   date + "T07:00:00Z",
		Distance:         distanceM,
		MovingTime:       movingSec,
		AverageHeartrate: avgHR,
	}
	if movingSec > 0 {
		a.AverageSpeed = distanceM / float64(movingSec)
	}
	return a
}

func TestCompareSessionsImprovement(t *testing.T) {
	// Most recent first: three 10k runs at 4:50/km, then three at 5:00/km.
	activities := []strava.Activity{
		run(6, "2026-02-16", 10000, 2900, fptr(148)),
		run(5, "2026-02-14", 10000, 2900, fptr(149)),
		run(4, "2026-02-12", 10000, 2900, fptr(150)),
		run(3, "2026-02-09", 10000, 3000, fptr(155)),
		run(2, "2026-02-07", 10000, 3000, fptr(156)),
		run(1, "2026-02-05", 10000, 3000, fptr(157)),
	}

	result, err := CompareSessions(activities, "Run", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Sessions) != 6 {
		t.Fatalf("got %d sessions, want 6", len(result.Sessions))
	}

	pace := findComparison(t, result, MetricPace)
	if pace.Delta.Label != LabelImprovement {
		t.Errorf("pace label = %v, want improvement", pace.Delta.Label)
	}
	// 4:50 vs 5:00 per km is a 3.33% drop.
	if math.Abs(pace.Delta.PercentChange - -10.0/3) > 0.01 {
		t.Errorf("pace change = %v, want about -3.33", pace.Delta.PercentChange)
	}

	hr := findComparison(t, result, MetricHeartRate)
	if hr.Delta.Label != LabelImprovement {
		t.Errorf("heart rate label = %v, want improvement", hr.Delta.Label)
	}

	dist := findComparison(t, result, MetricDistance)
	if dist.Delta.Label != LabelStable {
		t.Errorf("distance label = %v, want stable", dist.Delta.Label)
	}

	if result.Improvements != 2 {
		t.Errorf("improvements = %d, want 2", result.Improvements)
	}
	if result.Verdict != VerdictExcellent {
		t.Errorf("verdict = %v, want excellent", result.Verdict)
	}
}

func TestCompareSessionsSkipsUndefinedMetrics(t *testing.T) {
	// No heart rate anywhere, and one manual entry without distance. Pace
	// and distance windows use only the sessions that define them.
	activities := []strava.Activity{
		run(5, "2026-02-16", 10000, 2900, nil),
		run(4, "2026-02-14", 10000, 2900, nil),
		run(3, "2026-02-12", 0, 0, nil),
		run(2, "2026-02-10", 10000, 3000, nil),
		run(1, "2026-02-08", 10000, 3000, nil),
	}

	result, err := CompareSessions(activities, "Run", 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range result.Comparisons {
		if c.Metric == MetricHeartRate {
			t.Error("heart rate should not be compared without data")
		}
	}
	pace := findComparison(t, result, MetricPace)
	if pace.Delta.PercentChange >= 0 {
		t.Errorf("pace change = %v, want negative with the distance-less session excluded",
			pace.Delta.PercentChange)
	}
}

func TestCompareSessionsInsufficientData(t *testing.T) {
	activities := []strava.Activity{
		run(1, "2026-02-12", 10000, 3000, nil),
		{ID: 2, Type: "Ride", Distance: 30000, MovingTime: 4000},
	}

	_, err := CompareSessions(activities, "Run", 10)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("got %v, want InsufficientDataError", err)
	}
	if insufficient.Found != 1 || insufficient.Needed != 2 {
		t.Errorf("got found=%d needed=%d, want 1 and 2", insufficient.Found, insufficient.Needed)
	}
}

func TestCompareSessionsLimit(t *testing.T) {
	var activities []strava.Activity
	for i := int64(10); i >= 1; i-- {
		activities = append(activities, run(i, "2026-02-01", 5000, 1500, nil))
	}

	result, err := CompareSessions(activities, "Run", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Sessions) != 4 {
		t.Errorf("got %d sessions, want 4", len(result.Sessions))
	}
}

func TestComparePair(t *testing.T) {
	older := run(1, "2026-01-10", 10000, 3000, fptr(160)) // 5:00/km
	newer := run(2, "2026-01-20", 10000, 2900, fptr(150)) // 4:50/km

	result := ComparePair(older, newer)

	pace := findPairDelta(t, result, MetricPace)
	if pace.Delta == nil || pace.Delta.Label != LabelImprovement {
		t.Fatalf("pace delta = %+v, want improvement", pace.Delta)
	}
	if math.Abs(pace.Delta.PercentChange - -10.0/3) > 0.01 {
		t.Errorf("pace change = %v, want about -3.33", pace.Delta.PercentChange)
	}

	hr := findPairDelta(t, result, MetricHeartRate)
	if hr.Delta == nil || hr.Delta.Label != LabelImprovement {
		t.Fatalf("heart rate delta = %+v, want improvement", hr.Delta)
	}

	// Speed improved too, but it mirrors pace and is informational only.
	speed := findPairDelta(t, result, MetricSpeed)
	if speed.Delta == nil || speed.Delta.Label != LabelImprovement {
		t.Fatalf("speed delta = %+v, want improvement", speed.Delta)
	}
	if result.Improvements != 2 {
		t.Errorf("improvements = %d, want 2", result.Improvements)
	}
	if result.Verdict != VerdictExcellent {
		t.Errorf("verdict = %v, want excellent", result.Verdict)
	}
}

func TestComparePairMissingMetrics(t *testing.T) {
	older := run(1, "2026-01-10", 0, 0, nil) // manual entry, no distance
	newer := run(2, "2026-01-20", 10000, 2900, nil)

	result := ComparePair(older, newer)

	pace := findPairDelta(t, result, MetricPace)
	if pace.Delta != nil {
		t.Error("pace delta should be undefined with a missing side")
	}
	dist := findPairDelta(t, result, MetricDistance)
	if dist.Delta != nil {
		t.Error("distance delta against zero should be undefined")
	}
	if result.Improvements != 0 {
		t.Errorf("improvements = %d, want 0", result.Improvements)
	}
}

func TestVerdictTiers(t *testing.T) {
	tests := []struct {
		improvements int
		want         Verdict
	}{
		{0, VerdictConsistent},
		{1, VerdictGood},
		{2, VerdictExcellent},
		{3, VerdictExcellent},
	}
	for _, tt := range tests {
		if got := verdict(tt.improvements); got != tt.want {
			t.Errorf("verdict(%d) = %q, want %q", tt.improvements, got, tt.want)
		}
	}
	if VerdictConsistent != "stay-consistent" {
		t.Errorf("baseline verdict = %q, want stay-consistent", VerdictConsistent)
	}
}

func TestCompareByDate(t *testing.T) {
	activities := []strava.Activity{
		run(3, "2026-01-20", 10000, 2900, nil),
		run(2, "2026-01-15", 8000, 2400, nil),
		run(1, "2026-01-10", 10000, 3000, nil),
	}

	// Dates given newest-first still compare oldest-to-newest.
	result, err := CompareByDate(activities, "Run", "2026-01-20", "2026-01-10")
	if err != nil {
		t.Fatal(err)
	}
	if result.First.Date != "2026-01-10" || result.Second.Date != "2026-01-20" {
		t.Errorf("got %s vs %s, want 2026-01-10 vs 2026-01-20", result.First.Date, result.Second.Date)
	}
}

func TestCompareByDateNoSession(t *testing.T) {
	activities := []strava.Activity{
		run(1, "2026-01-10", 10000, 3000, nil),
	}

	_, err := CompareByDate(activities, "Run", "2026-01-10", "2026-01-18")
	var noSession *NoSessionError
	if !errors.As(err, &noSession) {
		t.Fatalf("got %v, want NoSessionError", err)
	}
	if got, want := err.Error(), "no running session found on 2026-01-18"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func findComparison(t *testing.T, r *SessionComparison, m Metric) WindowComparison {
	t.Helper()
	for _, c := range r.Comparisons {
		if c.Metric == m {
			return c
		}
	}
	t.Fatalf("no comparison for %v", m)
	return WindowComparison{}
}

func findPairDelta(t *testing.T, r *PairComparison, m Metric) PairDelta {
	t.Helper()
	for _, d := range r.Deltas {
		if d.Metric == m {
			return d
		}
	}
	t.Fatalf("no delta for %v", m)
	return PairDelta{}
}

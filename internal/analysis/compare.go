package analysis

import (
	"math"

	"stride/internal/strava"
)

// Session pairs an activity's identity with its derived metrics.
type Session struct {
	ID      int64
	Date    string // YYYY-MM-DD
	Name    string
	Metrics DerivedMetrics
}

// WindowComparison is the classified change of one metric between the recent
// and older session windows.
type WindowComparison struct {
	Metric     Metric
	RecentMean float64
	OlderMean  float64
	Delta      Delta
}

// Verdict is the overall trend summary of a session comparison.
type Verdict string

const (
	VerdictExcellent  Verdict = "excellent"       // two or more metrics improved
	VerdictGood       Verdict = "good"            // one metric improved
	VerdictConsistent Verdict = "stay-consistent" // keep at it
)

// SessionComparison is the structured result of a windowed comparison over
// the recent training history.
type SessionComparison struct {
	Sessions     []Session
	Comparisons  []WindowComparison
	Improvements int
	Verdict      Verdict
}

// CompareSessions runs the windowed comparator over the most recent
// numSessions activities of the given type. Activities must be ordered
// most-recent-first, the order the API returns them in.
func CompareSessions(activities []strava.Activity, activityType string, numSessions int) (*SessionComparison, error) {
	matched := FilterByType(activities, activityType)
	if len(matched) > numSessions {
		matched = matched[:numSessions]
	}
	if len(matched) < 2 {
		return nil, &InsufficientDataError{What: "running sessions", Needed: 2, Found: len(matched)}
	}

	result := &SessionComparison{}
	var paces, distances, heartRates []float64
	for _, a := range matched {
		m := Metrics(a)
		result.Sessions = append(result.Sessions, Session{
			ID:      a.ID,
			Date:    a.Date(),
			Name:    a.Name,
			Metrics: m,
		})
		if m.Pace != nil {
			paces = append(paces, *m.Pace)
		}
		if m.DistanceKm > 0 {
			distances = append(distances, m.DistanceKm)
		}
		if m.AvgHR != nil {
			heartRates = append(heartRates, *m.AvgHR)
		}
	}

	// Each metric is windowed over its own defined values, so a session
	// missing heart rate still contributes to pace and distance.
	result.compareMetric(paces, MetricPace)
	result.compareMetric(distances, MetricDistance)
	result.compareMetric(heartRates, MetricHeartRate)

	result.Verdict = verdict(result.Improvements)
	return result, nil
}

func (r *SessionComparison) compareMetric(values []float64, metric Metric) {
	recentMean, olderMean, d, ok := windowDelta(values, metric)
	if !ok {
		return
	}
	r.Comparisons = append(r.Comparisons, WindowComparison{
		Metric:     metric,
		RecentMean: recentMean,
		OlderMean:  olderMean,
		Delta:      d,
	})
	if d.Label == LabelImprovement {
		r.Improvements++
	}
}

func verdict(improvements int) Verdict {
	switch {
	case improvements >= 2:
		return VerdictExcellent
	case improvements == 1:
		return VerdictGood
	default:
		return VerdictConsistent
	}
}

// PairDelta is one metric row of a two-session comparison. Delta is nil when
// the change is undefined (first value zero) or either value is missing.
type PairDelta struct {
	Metric Metric
	First  *float64
	Second *float64
	Delta  *Delta
}

// PairComparison compares two specific sessions head to head. First is the
// earlier of the two dates; changes read first-to-second.
type PairComparison struct {
	First  Session
	Second Session
	Deltas []PairDelta

	Improvements int
	Verdict      Verdict

	// DistanceGapKm flags comparisons across very different distances,
	// where pace and heart rate differences mean little.
	DistanceGapKm float64
}

// CompareByDate finds a session of the given type on each of the two dates
// (YYYY-MM-DD, local time) and compares them. When multiple sessions share a
// date the first returned, i.e. most recent, one wins.
func CompareByDate(activities []strava.Activity, activityType, date1, date2 string) (*PairComparison, error) {
	a1, err := findByDate(activities, activityType, date1)
	if err != nil {
		return nil, err
	}
	a2, err := findByDate(activities, activityType, date2)
	if err != nil {
		return nil, err
	}

	// Order by date so the comparison always reads older-to-newer.
	if a1.Date() > a2.Date() {
		a1, a2 = a2, a1
	}
	return ComparePair(*a1, *a2), nil
}

func findByDate(activities []strava.Activity, activityType, date string) (*strava.Activity, error) {
	for i := range activities {
		if activities[i].Type == activityType && activities[i].Date() == date {
			return &activities[i], nil
		}
	}
	return nil, &NoSessionError{Date: date, What: "running session"}
}

// ComparePair builds the head-to-head comparison of two sessions.
func ComparePair(first, second strava.Activity) *PairComparison {
	m1, m2 := Metrics(first), Metrics(second)
	r := &PairComparison{
		First:         Session{ID: first.ID, Date: first.Date(), Name: first.Name, Metrics: m1},
		Second:        Session{ID: second.ID, Date: second.Date(), Name: second.Name, Metrics: m2},
		DistanceGapKm: math.Abs(m2.DistanceKm - m1.DistanceKm),
	}

	r.pairMetric(MetricDistance, &m1.DistanceKm, &m2.DistanceKm)
	r.pairMetric(MetricPace, m1.Pace, m2.Pace)
	r.pairMetric(MetricSpeed, m1.Speed, m2.Speed)
	r.pairMetric(MetricHeartRate, m1.AvgHR, m2.AvgHR)

	r.Verdict = verdict(r.Improvements)
	return r
}

func (r *PairComparison) pairMetric(metric Metric, first, second *float64) {
	row := PairDelta{Metric: metric, First: first, Second: second}
	if first != nil && second != nil {
		if d, ok := Classify(*second, *first, metric); ok {
			row.Delta = &d
			// Speed mirrors pace; counting both would double-weight it.
			if d.Label == LabelImprovement && metric != MetricSpeed {
				r.Improvements++
			}
		}
	}
	r.Deltas = append(r.Deltas, row)
}

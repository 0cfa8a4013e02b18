package analysis

// Metric identifies a comparable metric and determines which direction of
// change counts as an improvement.
type Metric int

const (
	MetricPace Metric = iota
	MetricDistance
	MetricHeartRate
	MetricSpeed
)

// String returns the display name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricPace:
		return "Pace"
	case MetricDistance:
		return "Distance"
	case MetricHeartRate:
		return "Heart Rate"
	case MetricSpeed:
		return "Speed"
	}
	return "Unknown"
}

// Label classifies a metric change.
type Label string

const (
	LabelImprovement Label = "improvement"
	LabelDecline     Label = "decline"
	LabelStable      Label = "stable"
)

// Delta is a classified change between two metric values.
type Delta struct {
	PercentChange float64
	Label         Label
}

// Classify computes the percentage change from older to recent and labels it.
// Pace and heart rate improve when they drop; distance and speed improve when
// they rise. Changes within 2% either way are stable, except distance which
// uses a 5% band. A zero older value makes the change undefined, reported as
// ok=false rather than a division blowup.
func Classify(recent, older float64, metric Metric) (Delta, bool) {
	if older == 0 {
		return Delta{}, false
	}

	change := (recent - older) / older * 100
	d := Delta{PercentChange: change, Label: LabelStable}

	switch metric {
	case MetricPace, MetricHeartRate:
		// Lower is better.
		if change < -2 {
			d.Label = LabelImprovement
		} else if change > 2 {
			d.Label = LabelDecline
		}
	case MetricDistance:
		// Higher is better, wider band.
		if change > 5 {
			d.Label = LabelImprovement
		} else if change < -5 {
			d.Label = LabelDecline
		}
	case MetricSpeed:
		// Higher is better.
		if change > 2 {
			d.Label = LabelImprovement
		} else if change < -2 {
			d.Label = LabelDecline
		}
	}
	return d, true
}

package analysis

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		recent     float64
		older      float64
		metric     Metric
		wantChange float64
		wantLabel  Label
	}{
		{"pace drop is improvement", 4.85, 5.0, MetricPace, -3.0, LabelImprovement},
		{"pace rise is decline", 5.15, 5.0, MetricPace, 3.0, LabelDecline},
		{"pace at +2 percent is stable", 102, 100, MetricPace, 2.0, LabelStable},
		{"pace just past +2 percent declines", 102.01, 100, MetricPace, 2.01, LabelDecline},
		{"pace just past -2 percent improves", 97.99, 100, MetricPace, -2.01, LabelImprovement},
		{"distance at +5 percent is stable", 105, 100, MetricDistance, 5.0, LabelStable},
		{"distance past +5 percent improves", 105.01, 100, MetricDistance, 5.01, LabelImprovement},
		{"distance drop is decline", 94, 100, MetricDistance, -6.0, LabelDecline},
		{"heart rate drop is improvement", 145, 150, MetricHeartRate, -10.0 / 3, LabelImprovement},
		{"speed rise is improvement", 10.3, 10, MetricSpeed, 3.0, LabelImprovement},
		{"speed drop is decline", 9.7, 10, MetricSpeed, -3.0, LabelDecline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Classify(tt.recent, tt.older, tt.metric)
			if !ok {
				t.Fatal("expected a defined change")
			}
			if math.Abs(d.PercentChange-tt.wantChange) > 0.001 {
				t.Errorf("PercentChange = %v, want %v", d.PercentChange, tt.wantChange)
			}
			if d.Label != tt.wantLabel {
				t.Errorf("Label = %v, want %v", d.Label, tt.wantLabel)
			}
		})
	}
}

func TestClassifyZeroBaseline(t *testing.T) {
	if _, ok := Classify(5, 0, MetricPace); ok {
		t.Error("change against a zero baseline should be undefined")
	}
}

func TestWindows(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantRecent []float64
		wantOlder  []float64
	}{
		{"six values split cleanly", []float64{1, 2, 3, 4, 5, 6}, []float64{1, 2, 3}, []float64{4, 5, 6}},
		{"five values overlap", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3}, []float64{3, 4, 5}},
		{"two values fully overlap", []float64{1, 2}, []float64{1, 2}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recent, older := windows(tt.values)
			if !equalFloats(recent, tt.wantRecent) {
				t.Errorf("recent = %v, want %v", recent, tt.wantRecent)
			}
			if !equalFloats(older, tt.wantOlder) {
				t.Errorf("older = %v, want %v", older, tt.wantOlder)
			}
		})
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

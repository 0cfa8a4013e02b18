package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"stride/internal/strava"
)

func TestRecommendInsufficientData(t *testing.T) {
	activities := []strava.Activity{
		run(4, "2026-01-15", 5000, 1500, nil),
		run(3, "2026-01-13", 5000, 1500, nil),
		run(2, "2026-01-10", 5000, 1500, nil),
		run(1, "2026-01-08", 5000, 1500, nil),
	}

	_, err := Recommend(activities, GoalPerformance, 30)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("got %v, want InsufficientDataError", err)
	}
	if insufficient.Needed != 5 {
		t.Errorf("needed = %d, want 5", insufficient.Needed)
	}
}

func TestRecommendLevelFromWeeklyFrequency(t *testing.T) {
	// Seven runs across two ISO weeks: 3.5 per week, intermediate.
	activities := []strava.Activity{
		run(7, "2026-01-14", 8000, 2400, nil),
		run(6, "2026-01-13", 8000, 2400, nil),
		run(5, "2026-01-12", 8000, 2400, nil),
		run(4, "2026-01-08", 8000, 2400, nil),
		run(3, "2026-01-07", 8000, 2400, nil),
		run(2, "2026-01-06", 8000, 2400, nil),
		run(1, "2026-01-05", 8000, 2400, nil),
	}

	plan, err := Recommend(activities, GoalPerformance, 30)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(plan.Summary.WeeklyFrequency-3.5) > 0.001 {
		t.Errorf("weekly frequency = %v, want 3.5", plan.Summary.WeeklyFrequency)
	}
	if plan.Level != LevelIntermediate {
		t.Errorf("level = %v, want intermediate", plan.Level)
	}
}

func TestInferLevel(t *testing.T) {
	tests := []struct {
		frequency float64
		want      Level
	}{
		{0.5, LevelBeginner},
		{1.99, LevelBeginner},
		{2, LevelIntermediate},
		{3.99, LevelIntermediate},
		{4, LevelAdvanced},
		{6, LevelAdvanced},
	}
	for _, tt := range tests {
		if got := inferLevel(tt.frequency); got != tt.want {
			t.Errorf("inferLevel(%v) = %v, want %v", tt.frequency, got, tt.want)
		}
	}
}

func TestRecommendZones(t *testing.T) {
	activities := []strava.Activity{
		run(5, "2026-01-15", 10000, 3000, fptr(150)),
		run(4, "2026-01-13", 10000, 3000, fptr(150)),
		run(3, "2026-01-10", 10000, 3000, fptr(150)),
		run(2, "2026-01-08", 10000, 3000, fptr(150)),
		run(1, "2026-01-05", 10000, 3000, fptr(150)),
	}

	plan, err := Recommend(activities, GoalEndurance, 30)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(plan.EstMaxHR-172.5) > 0.001 {
		t.Errorf("estimated max HR = %v, want 172.5", plan.EstMaxHR)
	}
	if len(plan.Zones) != 5 {
		t.Fatalf("got %d zones, want 5", len(plan.Zones))
	}
	z2 := plan.Zones[1]
	if math.Abs(z2.Low-103.5) > 0.001 || math.Abs(z2.High-120.75) > 0.001 {
		t.Errorf("zone 2 = %v-%v, want 103.5-120.75", z2.Low, z2.High)
	}
}

func TestRecommendNoHeartRateData(t *testing.T) {
	activities := []strava.Activity{
		run(5, "2026-01-15", 10000, 3000, nil),
		run(4, "2026-01-13", 10000, 3000, nil),
		run(3, "2026-01-10", 10000, 3000, nil),
		run(2, "2026-01-08", 10000, 3000, nil),
		run(1, "2026-01-05", 10000, 3000, nil),
	}

	plan, err := Recommend(activities, GoalPace, 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Zones) != 0 {
		t.Errorf("got %d zones, want none without heart rate data", len(plan.Zones))
	}
	if plan.Summary.AvgHR != nil {
		t.Error("average HR should be nil without data")
	}
}

func TestRecommendDistanceGoalTarget(t *testing.T) {
	activities := []strava.Activity{
		run(5, "2026-01-15", 12000, 3600, nil), // longest run, 12 km
		run(4, "2026-01-13", 8000, 2400, nil),
		run(3, "2026-01-10", 8000, 2400, nil),
		run(2, "2026-01-08", 8000, 2400, nil),
		run(1, "2026-01-05", 8000, 2400, nil),
	}

	plan, err := Recommend(activities, GoalDistance, 30)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(plan.Summary.MaxDistanceKm-12) > 0.001 {
		t.Errorf("max distance = %v, want 12", plan.Summary.MaxDistanceKm)
	}
	found := false
	for _, n := range plan.Notes {
		if strings.Contains(n, "14.4 km") {
			found = true
		}
	}
	if !found {
		t.Errorf("notes %v should mention the 14.4 km long-run target", plan.Notes)
	}
	if len(plan.Week) != 7 {
		t.Errorf("got %d plan days, want 7", len(plan.Week))
	}
}

func TestParseGoal(t *testing.T) {
	tests := []struct {
		in   string
		want Goal
	}{
		{"improve_performance", GoalPerformance},
		{"increase_distance", GoalDistance},
		{"improve_pace", GoalPace},
		{"build_endurance", GoalEndurance},
		{"", GoalPerformance},
		{"get_swole", GoalPerformance},
	}
	for _, tt := range tests {
		if got := ParseGoal(tt.in); got != tt.want {
			t.Errorf("ParseGoal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

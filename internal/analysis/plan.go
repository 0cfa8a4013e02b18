package analysis

import (
	"fmt"
	"time"

	"stride/internal/strava"
)

// Goal selects what a training plan optimizes for.
type Goal string

const (
	GoalPerformance Goal = "improve_performance"
	GoalDistance    Goal = "increase_distance"
	GoalPace        Goal = "improve_pace"
	GoalEndurance   Goal = "build_endurance"
)

// ParseGoal maps free-form input onto a known goal, defaulting to
// improve_performance.
func ParseGoal(s string) Goal {
	switch Goal(s) {
	case GoalDistance, GoalPace, GoalEndurance:
		return Goal(s)
	default:
		return GoalPerformance
	}
}

// Level is the inferred experience level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// PerformanceSummary aggregates the history a plan is based on.
type PerformanceSummary struct {
	Sessions        int
	WeeklyFrequency float64 // sessions per week, averaged over active weeks
	AvgDistanceKm   float64
	MaxDistanceKm   float64
	AvgPace         *float64 // min/km, nil without pace data
	AvgHR           *float64 // bpm, nil without heart rate data
}

// PlanDay is one scheduled workout in the weekly template.
type PlanDay struct {
	Day     string
	Workout string
}

// HRZone is a heart rate training zone derived from the estimated max.
type HRZone struct {
	Name string
	Low  float64 // bpm
	High float64 // bpm
}

// TrainingPlan is the structured recommendation result.
type TrainingPlan struct {
	Goal    Goal
	Level   Level
	Summary PerformanceSummary
	Focus   string
	Week    []PlanDay
	Notes   []string

	// Zones is empty when the history has no heart rate data. EstMaxHR is
	// only meaningful when Zones is populated.
	EstMaxHR float64
	Zones    []HRZone
}

// minPlanSessions is the least history a recommendation is based on.
const minPlanSessions = 5

// Recommend builds a training plan from the recent running history.
// Activities must be ordered most-recent-first; at most numSessions runs are
// considered.
func Recommend(activities []strava.Activity, goal Goal, numSessions int) (*TrainingPlan, error) {
	runs := FilterByType(activities, "Run")
	if len(runs) > numSessions {
		runs = runs[:numSessions]
	}
	if len(runs) < minPlanSessions {
		return nil, &InsufficientDataError{What: "running sessions", Needed: minPlanSessions, Found: len(runs)}
	}

	summary := summarize(runs)
	level := inferLevel(summary.WeeklyFrequency)

	plan := &TrainingPlan{
		Goal:    goal,
		Level:   level,
		Summary: summary,
		Focus:   focusFor(goal),
		Week:    weekFor(goal, level),
		Notes:   notesFor(goal, level, summary),
	}

	if summary.AvgHR != nil {
		plan.EstMaxHR = *summary.AvgHR * 1.15
		plan.Zones = zonesFor(plan.EstMaxHR)
	}
	return plan, nil
}

func summarize(runs []strava.Activity) PerformanceSummary {
	s := PerformanceSummary{Sessions: len(runs)}

	var distances, paces, heartRates []float64
	weeks := map[string]int{}
	for _, a := range runs {
		m := Metrics(a)
		if m.DistanceKm > 0 {
			distances = append(distances, m.DistanceKm)
			if m.DistanceKm > s.MaxDistanceKm {
				s.MaxDistanceKm = m.DistanceKm
			}
		}
		if m.Pace != nil {
			paces = append(paces, *m.Pace)
		}
		if m.AvgHR != nil {
			heartRates = append(heartRates, *m.AvgHR)
		}
		if t, err := time.Parse("2006-01-02", a.Date()); err == nil {
			y, w := t.ISOWeek()
			weeks[weekKey(y, w)]++
		}
	}

	s.AvgDistanceKm = mean(distances)
	if len(paces) > 0 {
		p := mean(paces)
		s.AvgPace = &p
	}
	if len(heartRates) > 0 {
		hr := mean(heartRates)
		s.AvgHR = &hr
	}
	if len(weeks) > 0 {
		var total int
		for _, n := range weeks {
			total += n
		}
		s.WeeklyFrequency = float64(total) / float64(len(weeks))
	}
	return s
}

func weekKey(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func inferLevel(weeklyFrequency float64) Level {
	switch {
	case weeklyFrequency < 2:
		return LevelBeginner
	case weeklyFrequency < 4:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

func focusFor(goal Goal) string {
	switch goal {
	case GoalDistance:
		return "Gradually extending your long run while keeping easy days truly easy."
	case GoalPace:
		return "Sharpening speed with intervals and tempo work on a base of easy running."
	case GoalEndurance:
		return "Building aerobic endurance with more time on feet at conversational effort."
	default:
		return "Balanced development of speed and endurance."
	}
}

func weekFor(goal Goal, level Level) []PlanDay {
	easy := "Easy run, conversational pace"
	rest := "Rest or cross-training"

	switch goal {
	case GoalDistance:
		week := []PlanDay{
			{"Monday", rest},
			{"Tuesday", easy},
			{"Wednesday", "Medium run, steady effort"},
			{"Thursday", rest},
			{"Friday", easy},
			{"Saturday", "Long run, add ~10% each week"},
			{"Sunday", "Recovery jog or walk"},
		}
		if level == LevelBeginner {
			week[2].Workout = rest
		}
		return week
	case GoalPace:
		intervals := "Intervals: 6 x 400m hard with equal recovery"
		if level == LevelAdvanced {
			intervals = "Intervals: 8 x 800m at 5K effort with 400m jog recovery"
		}
		return []PlanDay{
			{"Monday", rest},
			{"Tuesday", intervals},
			{"Wednesday", easy},
			{"Thursday", "Tempo run: 20 min comfortably hard"},
			{"Friday", rest},
			{"Saturday", easy},
			{"Sunday", "Long run, relaxed pace"},
		}
	case GoalEndurance:
		return []PlanDay{
			{"Monday", rest},
			{"Tuesday", easy},
			{"Wednesday", "Steady run, 45-60 min"},
			{"Thursday", easy},
			{"Friday", rest},
			{"Saturday", "Long run at conversational pace"},
			{"Sunday", "Recovery jog or walk"},
		}
	default:
		week := []PlanDay{
			{"Monday", rest},
			{"Tuesday", "Intervals or hill repeats"},
			{"Wednesday", easy},
			{"Thursday", "Tempo run: 20 min comfortably hard"},
			{"Friday", rest},
			{"Saturday", "Long run, relaxed pace"},
			{"Sunday", easy},
		}
		if level == LevelBeginner {
			week[1].Workout = "Fartlek: easy run with short pickups"
			week[6].Workout = rest
		}
		return week
	}
}

func notesFor(goal Goal, level Level, s PerformanceSummary) []string {
	var notes []string
	switch goal {
	case GoalDistance:
		notes = append(notes, noteTargetLongRun(s.MaxDistanceKm))
	case GoalPace:
		notes = append(notes, "Run intervals on fresh legs; skip them the week after a race.")
	case GoalEndurance:
		notes = append(notes, "Keep most running easy; endurance grows from volume, not intensity.")
	default:
		notes = append(notes, "Alternate harder weeks with an easier week every third or fourth week.")
	}
	if level == LevelBeginner {
		notes = append(notes, "Increase total volume slowly and prioritize consistency over any single workout.")
	}
	return notes
}

func noteTargetLongRun(maxDistanceKm float64) string {
	return fmt.Sprintf("Work toward a long run of %.1f km over the next few weeks.", maxDistanceKm*1.2)
}

func zonesFor(estMaxHR float64) []HRZone {
	bounds := []struct {
		name      string
		low, high float64
	}{
		{"Zone 1 (Recovery)", 0.50, 0.60},
		{"Zone 2 (Aerobic)", 0.60, 0.70},
		{"Zone 3 (Tempo)", 0.70, 0.80},
		{"Zone 4 (Threshold)", 0.80, 0.90},
		{"Zone 5 (VO2 Max)", 0.90, 1.00},
	}
	zones := make([]HRZone, 0, len(bounds))
	for _, b := range bounds {
		zones = append(zones, HRZone{
			Name: b.name,
			Low:  estMaxHR * b.low,
			High: estMaxHR * b.high,
		})
	}
	return zones
}

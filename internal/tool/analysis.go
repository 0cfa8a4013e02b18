package tool

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/analysis"
	"stride/internal/render"
)

// fetchWindow is how many recent activities the analysis tools pull; large
// enough that the runs they need are in range even for multi-sport athletes.
const fetchWindow = 30

func (s *Server) registerAnalysisTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "compare_running_sessions",
		Description: `Compare the recent running sessions against the preceding ones:
pace, distance and heart rate trends with an overall verdict. num_sessions
controls how many recent runs are analyzed (default 5).`,
		Annotations: readOnly("Compare Running Sessions"),
	}, s.compareRunningSessions)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "compare_specific_runs",
		Description: `Compare two runs head to head by their dates (YYYY-MM-DD):
distance, time, pace, speed, heart rate and elevation with percentage
changes.`,
		Annotations: readOnly("Compare Specific Runs"),
	}, s.compareSpecificRuns)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "recommend_training",
		Description: `Build a training recommendation from the recent running history:
inferred level, weekly template, heart rate zones and goal-specific notes.
goal is one of improve_performance, increase_distance, improve_pace,
build_endurance. num_sessions (5-30, default 10) sets how much history the
plan is based on.`,
		Annotations: readOnly("Recommend Training"),
	}, s.recommendTraining)
}

// CompareSessionsInput selects how many recent runs to compare.
type CompareSessionsInput struct {
	NumSessions int `json:"num_sessions,omitempty" jsonschema:"How many recent running sessions to analyze. Default: 5."`
}

// CompareRunsInput names the two runs to compare by date.
type CompareRunsInput struct {
	Date1 string `json:"date1" jsonschema:"Date of the first run, YYYY-MM-DD (local time)."`
	Date2 string `json:"date2" jsonschema:"Date of the second run, YYYY-MM-DD (local time)."`
}

// RecommendInput selects the training goal and the history depth.
type RecommendInput struct {
	Goal        string `json:"goal,omitempty" jsonschema:"Training goal: improve_performance, increase_distance, improve_pace or build_endurance. Default: improve_performance."`
	NumSessions int    `json:"num_sessions,omitempty" jsonschema:"How many recent running sessions to base the plan on, 5 to 30. Default: 10."`
}

func (s *Server) compareRunningSessions(ctx context.Context, req *mcp.CallToolRequest, input CompareSessionsInput) (*mcp.CallToolResult, Output, error) {
	numSessions := input.NumSessions
	if numSessions <= 0 {
		numSessions = 5
	}
	s.log.Info("tool call", "tool", "compare_running_sessions", "num_sessions", numSessions)

	activities, err := s.fetchActivities(ctx, max(numSessions, fetchWindow))
	if err != nil {
		return nil, errorReport("fetching activities", err), nil
	}

	result, err := analysis.CompareSessions(activities, "Run", numSessions)
	if err != nil {
		return nil, analysisReport(err), nil
	}
	return nil, report(render.SessionComparison(result)), nil
}

func (s *Server) compareSpecificRuns(ctx context.Context, req *mcp.CallToolRequest, input CompareRunsInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "compare_specific_runs", "date1", input.Date1, "date2", input.Date2)

	activities, err := s.fetchActivities(ctx, 200)
	if err != nil {
		return nil, errorReport("fetching activities", err), nil
	}

	result, err := analysis.CompareByDate(activities, "Run", input.Date1, input.Date2)
	if err != nil {
		return nil, analysisReport(err), nil
	}
	return nil, report(render.PairComparison(result)), nil
}

func (s *Server) recommendTraining(ctx context.Context, req *mcp.CallToolRequest, input RecommendInput) (*mcp.CallToolResult, Output, error) {
	goal := analysis.ParseGoal(input.Goal)
	numSessions := input.NumSessions
	switch {
	case numSessions <= 0:
		numSessions = 10
	case numSessions < 5:
		numSessions = 5
	case numSessions > 30:
		numSessions = 30
	}
	s.log.Info("tool call", "tool", "recommend_training", "goal", goal, "num_sessions", numSessions)

	activities, err := s.fetchActivities(ctx, max(numSessions, fetchWindow))
	if err != nil {
		return nil, errorReport("fetching activities", err), nil
	}

	plan, err := analysis.Recommend(activities, goal, numSessions)
	if err != nil {
		return nil, analysisReport(err), nil
	}
	return nil, report(render.TrainingPlan(plan)), nil
}

// analysisReport turns an expected analysis outcome (too little data, no
// session on a date) into a friendly message rather than an error banner.
func analysisReport(err error) Output {
	var insufficient *analysis.InsufficientDataError
	var noSession *analysis.NoSessionError
	if errors.As(err, &insufficient) || errors.As(err, &noSession) {
		return report("ℹ️ " + err.Error() + ".")
	}
	return errorReport("analyzing sessions", err)
}

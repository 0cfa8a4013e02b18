package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/render"
)

func (s *Server) registerAthleteTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_athlete_profile",
		Description: `Get the authenticated athlete's Strava profile: name, location,
weight, FTP and follower counts.`,
		Annotations: readOnly("Get Athlete Profile"),
	}, s.getAthleteProfile)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_athlete_stats",
		Description: `Get the athlete's activity totals: recent (last 4 weeks) and
all-time running and riding distance, time and elevation.`,
		Annotations: readOnly("Get Athlete Stats"),
	}, s.getAthleteStats)
}

// EmptyInput is used by tools that take no parameters.
type EmptyInput struct{}

func (s *Server) getAthleteProfile(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_athlete_profile")

	athlete, err := s.api.GetAthlete(ctx)
	if err != nil {
		return nil, errorReport("fetching athlete profile", err), nil
	}
	return nil, report(render.Profile(athlete)), nil
}

func (s *Server) getAthleteStats(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_athlete_stats")

	athlete, err := s.api.GetAthlete(ctx)
	if err != nil {
		return nil, errorReport("fetching athlete profile", err), nil
	}
	stats, err := s.api.GetAthleteStats(ctx, athlete.ID)
	if err != nil {
		return nil, errorReport("fetching athlete stats", err), nil
	}
	return nil, report(render.Stats(stats)), nil
}

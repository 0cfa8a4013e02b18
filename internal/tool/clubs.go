package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/render"
)

func (s *Server) registerClubTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_athlete_clubs",
		Description: `List the clubs the authenticated athlete belongs to.`,
		Annotations: readOnly("Get Athlete Clubs"),
	}, s.getAthleteClubs)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_club_details",
		Description: `Get the detail of a club by ID: sport, location, member count and description.`,
		Annotations: readOnly("Get Club Details"),
	}, s.getClubDetails)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_club_activities",
		Description: `List recent activities posted by a club's members.`,
		Annotations: readOnly("Get Club Activities"),
	}, s.getClubActivities)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_club_members",
		Description: `List the members of a club by ID.`,
		Annotations: readOnly("Get Club Members"),
	}, s.getClubMembers)
}

// ClubInput identifies a club, with an optional page size for feeds.
type ClubInput struct {
	ClubID  int64 `json:"club_id" jsonschema:"The Strava club ID."`
	PerPage int   `json:"per_page,omitempty" jsonschema:"Number of entries to return. Default: 30."`
}

func (s *Server) getAthleteClubs(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_athlete_clubs")

	clubs, err := s.api.GetAthleteClubs(ctx)
	if err != nil {
		return nil, errorReport("fetching clubs", err), nil
	}
	return nil, report(render.Clubs(clubs)), nil
}

func (s *Server) getClubDetails(ctx context.Context, req *mcp.CallToolRequest, input ClubInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_club_details", "club_id", input.ClubID)

	club, err := s.api.GetClub(ctx, input.ClubID)
	if err != nil {
		return nil, errorReport("fetching club", err), nil
	}
	return nil, report(render.ClubDetail(club)), nil
}

func (s *Server) getClubActivities(ctx context.Context, req *mcp.CallToolRequest, input ClubInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_club_activities", "club_id", input.ClubID)

	activities, err := s.api.GetClubActivities(ctx, input.ClubID, pageSize(input.PerPage))
	if err != nil {
		return nil, errorReport("fetching club activities", err), nil
	}
	return nil, report(render.ClubActivities(activities)), nil
}

func (s *Server) getClubMembers(ctx context.Context, req *mcp.CallToolRequest, input ClubInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_club_members", "club_id", input.ClubID)

	members, err := s.api.GetClubMembers(ctx, input.ClubID, pageSize(input.PerPage))
	if err != nil {
		return nil, errorReport("fetching club members", err), nil
	}
	return nil, report(render.ClubMembers(members)), nil
}

func pageSize(perPage int) int {
	if perPage <= 0 {
		return 30
	}
	return perPage
}

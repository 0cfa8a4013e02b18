package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/render"
)

func (s *Server) registerRouteTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_athlete_routes",
		Description: `List the athlete's saved routes with distance and elevation.`,
		Annotations: readOnly("List Athlete Routes"),
	}, s.listAthleteRoutes)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_route_details",
		Description: `Get the detail of a saved route by ID, with an optional map
image of the route.`,
		Annotations: readOnly("Get Route Details"),
	}, s.getRouteDetails)
}

// RoutesInput selects how many routes to list.
type RoutesInput struct {
	PerPage int `json:"per_page,omitempty" jsonschema:"Number of routes to return. Default: 30."`
}

// RouteInput identifies a single route.
type RouteInput struct {
	RouteID int64 `json:"route_id" jsonschema:"The Strava route ID."`
}

func (s *Server) listAthleteRoutes(ctx context.Context, req *mcp.CallToolRequest, input RoutesInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "list_athlete_routes")

	athlete, err := s.api.GetAthlete(ctx)
	if err != nil {
		return nil, errorReport("fetching athlete profile", err), nil
	}
	routes, err := s.api.GetAthleteRoutes(ctx, athlete.ID, pageSize(input.PerPage))
	if err != nil {
		return nil, errorReport("fetching routes", err), nil
	}
	return nil, report(render.Routes(routes)), nil
}

func (s *Server) getRouteDetails(ctx context.Context, req *mcp.CallToolRequest, input RouteInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_route_details", "route_id", input.RouteID)

	route, err := s.api.GetRoute(ctx, input.RouteID)
	if err != nil {
		return nil, errorReport("fetching route", err), nil
	}
	mapURL := render.MapURL(route.Map.Best(), s.opts.MapsAPIKey, s.opts.MapSize)
	return nil, report(render.RouteDetail(route, mapURL)), nil
}

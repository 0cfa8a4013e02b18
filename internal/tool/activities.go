package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/render"
)

func (s *Server) registerActivityTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_recent_activities",
		Description: `List the athlete's recent activities with date, distance, time,
pace and heart rate. Use per_page to control how many (default 10, max 200).`,
		Annotations: readOnly("Get Recent Activities"),
	}, s.getRecentActivities)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_activity_details",
		Description: `Get the full detail of a single activity by ID, including splits
data, device and an optional route map image.`,
		Annotations: readOnly("Get Activity Details"),
	}, s.getActivityDetails)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_activity_zones",
		Description: `Get the heart rate and power zone time distribution of an
activity by ID.`,
		Annotations: readOnly("Get Activity Zones"),
	}, s.getActivityZones)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_activity_laps",
		Description: `Get the laps of an activity by ID with per-lap distance, time and pace.`,
		Annotations: readOnly("Get Activity Laps"),
	}, s.getActivityLaps)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_activity_streams",
		Description: `Summarize the point-by-point data streams of an activity (time,
distance, heart rate, altitude, speed). keys selects streams as a
comma-separated list.`,
		Annotations: readOnly("Get Activity Streams"),
	}, s.getActivityStreams)
}

// ActivitiesInput selects how many recent activities to list.
type ActivitiesInput struct {
	PerPage int `json:"per_page,omitempty" jsonschema:"Number of activities to return. Default: 10, maximum: 200."`
}

// ActivityInput identifies a single activity.
type ActivityInput struct {
	ActivityID int64 `json:"activity_id" jsonschema:"The Strava activity ID."`
}

// StreamsInput identifies an activity and the streams to summarize.
type StreamsInput struct {
	ActivityID int64  `json:"activity_id" jsonschema:"The Strava activity ID."`
	Keys       string `json:"keys,omitempty" jsonschema:"Comma-separated stream types, e.g. 'time,distance,heartrate,altitude,velocity_smooth'. Default covers the common ones."`
}

func (s *Server) getRecentActivities(ctx context.Context, req *mcp.CallToolRequest, input ActivitiesInput) (*mcp.CallToolResult, Output, error) {
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	s.log.Info("tool call", "tool", "get_recent_activities", "per_page", perPage)

	activities, err := s.fetchActivities(ctx, perPage)
	if err != nil {
		return nil, errorReport("fetching activities", err), nil
	}
	return nil, report(render.Activities(activities)), nil
}

func (s *Server) getActivityDetails(ctx context.Context, req *mcp.CallToolRequest, input ActivityInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_activity_details", "activity_id", input.ActivityID)

	activity, err := s.api.GetActivity(ctx, input.ActivityID)
	if err != nil {
		return nil, errorReport("fetching activity", err), nil
	}
	mapURL := render.MapURL(activity.Map.Best(), s.opts.MapsAPIKey, s.opts.MapSize)
	return nil, report(render.ActivityDetail(activity, mapURL)), nil
}

func (s *Server) getActivityZones(ctx context.Context, req *mcp.CallToolRequest, input ActivityInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_activity_zones", "activity_id", input.ActivityID)

	zones, err := s.api.GetActivityZones(ctx, input.ActivityID)
	if err != nil {
		return nil, errorReport("fetching activity zones", err), nil
	}
	return nil, report(render.Zones(zones)), nil
}

func (s *Server) getActivityLaps(ctx context.Context, req *mcp.CallToolRequest, input ActivityInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_activity_laps", "activity_id", input.ActivityID)

	laps, err := s.api.GetActivityLaps(ctx, input.ActivityID)
	if err != nil {
		return nil, errorReport("fetching activity laps", err), nil
	}
	return nil, report(render.Laps(laps)), nil
}

func (s *Server) getActivityStreams(ctx context.Context, req *mcp.CallToolRequest, input StreamsInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_activity_streams", "activity_id", input.ActivityID, "keys", input.Keys)

	streams, err := s.api.GetActivityStreams(ctx, input.ActivityID, input.Keys)
	if err != nil {
		return nil, errorReport("fetching activity streams", err), nil
	}
	return nil, report(render.Streams(streams)), nil
}

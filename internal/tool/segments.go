package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/render"
)

func (s *Server) registerSegmentTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "explore_segments",
		Description: `Search for popular segments inside a geographic bounding box.
Coordinates are decimal degrees; activity_type is "running" or "riding".`,
		Annotations: readOnly("Explore Segments"),
	}, s.exploreSegments)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "get_segment_details",
		Description: `Get the detail of a segment by ID: distance, grades, elevation,
location and effort counts, with an optional map image.`,
		Annotations: readOnly("Get Segment Details"),
	}, s.getSegmentDetails)
}

// ExploreInput is a bounding box segment search.
type ExploreInput struct {
	SWLat        float64 `json:"sw_lat" jsonschema:"South-west corner latitude in decimal degrees."`
	SWLng        float64 `json:"sw_lng" jsonschema:"South-west corner longitude in decimal degrees."`
	NELat        float64 `json:"ne_lat" jsonschema:"North-east corner latitude in decimal degrees."`
	NELng        float64 `json:"ne_lng" jsonschema:"North-east corner longitude in decimal degrees."`
	ActivityType string  `json:"activity_type,omitempty" jsonschema:"Segment type to search for: 'running' or 'riding'. Default: running."`
}

// SegmentInput identifies a single segment.
type SegmentInput struct {
	SegmentID int64 `json:"segment_id" jsonschema:"The Strava segment ID."`
}

func (s *Server) exploreSegments(ctx context.Context, req *mcp.CallToolRequest, input ExploreInput) (*mcp.CallToolResult, Output, error) {
	activityType := input.ActivityType
	if activityType == "" {
		activityType = "running"
	}
	bounds := fmt.Sprintf("%f,%f,%f,%f", input.SWLat, input.SWLng, input.NELat, input.NELng)
	s.log.Info("tool call", "tool", "explore_segments", "bounds", bounds, "activity_type", activityType)

	segments, err := s.api.ExploreSegments(ctx, bounds, activityType)
	if err != nil {
		return nil, errorReport("exploring segments", err), nil
	}
	return nil, report(render.ExploreSegments(segments)), nil
}

func (s *Server) getSegmentDetails(ctx context.Context, req *mcp.CallToolRequest, input SegmentInput) (*mcp.CallToolResult, Output, error) {
	s.log.Info("tool call", "tool", "get_segment_details", "segment_id", input.SegmentID)

	segment, err := s.api.GetSegment(ctx, input.SegmentID)
	if err != nil {
		return nil, errorReport("fetching segment", err), nil
	}
	mapURL := render.MapURL(segment.Map.Best(), s.opts.MapsAPIKey, s.opts.MapSize)
	return nil, report(render.SegmentDetail(segment, mapURL)), nil
}

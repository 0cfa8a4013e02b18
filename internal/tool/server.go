package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"stride/internal/strava"
)

// ptr returns a pointer to the given value, for optional annotation fields.
func ptr[T any](v T) *T {
	return &v
}

// API is the Strava surface the tools call. *strava.Client implements it;
// tests substitute a fake.
type API interface {
	GetAthlete(ctx context.Context) (*strava.Athlete, error)
	GetAthleteStats(ctx context.Context, athleteID int64) (*strava.AthleteStats, error)
	GetActivities(ctx context.Context, page, perPage int) ([]strava.Activity, error)
	GetActivity(ctx context.Context, activityID int64) (*strava.Activity, error)
	GetActivityZones(ctx context.Context, activityID int64) ([]strava.ActivityZones, error)
	GetActivityLaps(ctx context.Context, activityID int64) ([]strava.Lap, error)
	GetActivityStreams(ctx context.Context, activityID int64, keys string) (strava.StreamSet, error)
	ExploreSegments(ctx context.Context, bounds, activityType string) ([]strava.ExploreSegment, error)
	GetSegment(ctx context.Context, segmentID int64) (*strava.Segment, error)
	GetAthleteClubs(ctx context.Context) ([]strava.Club, error)
	GetClub(ctx context.Context, clubID int64) (*strava.Club, error)
	GetClubActivities(ctx context.Context, clubID int64, perPage int) ([]strava.ClubActivity, error)
	GetClubMembers(ctx context.Context, clubID int64, perPage int) ([]strava.ClubMember, error)
	GetRoute(ctx context.Context, routeID int64) (*strava.Route, error)
	GetAthleteRoutes(ctx context.Context, athleteID int64, perPage int) ([]strava.Route, error)
}

// Cache persists the last fetched activity list so comparisons keep working
// through transient API failures. Optional; a nil cache disables it.
type Cache interface {
	ReplaceRecent(activities []strava.Activity) error
	RecentActivities() ([]strava.Activity, error)
}

// Options configures the tool server.
type Options struct {
	// MapsAPIKey enables static route map images in reports. Empty means
	// reports contain no images.
	MapsAPIKey string
	// MapSize is the static map dimensions, e.g. "600x400".
	MapSize string
	// Cache, if non-nil, stores fetched activity lists.
	Cache Cache
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server exposes the Strava toolset over the Model Context Protocol.
type Server struct {
	mcp  *mcp.Server
	api  API
	opts Options
	log  *slog.Logger
}

// New creates the tool server and registers every tool.
func New(api API, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MapSize == "" {
		opts.MapSize = "600x400"
	}

	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "stride",
			Version: "1.0.0",
		}, nil),
		api:  api,
		opts: opts,
		log:  opts.Logger,
	}

	s.registerAthleteTools()
	s.registerActivityTools()
	s.registerSegmentTools()
	s.registerClubTools()
	s.registerRouteTools()
	s.registerAnalysisTools()

	s.log.Info("tool server initialized", "tools", 18)
	return s
}

// MCPServer returns the underlying MCP server, for alternate transports.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Run serves the toolset over stdio until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("tool server starting")
	defer s.log.Info("tool server stopped")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Output is the shared result shape: a Markdown report. Upstream failures
// are reported here as text too, so a conversational caller can relay them
// instead of choking on a protocol error.
type Output struct {
	Report string `json:"report"`
}

func report(text string) Output {
	return Output{Report: text}
}

func errorReport(action string, err error) Output {
	return Output{Report: fmt.Sprintf("❌ Error %s: %v", action, err)}
}

func readOnly(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           title,
		ReadOnlyHint:    true,
		IdempotentHint:  true,
		OpenWorldHint:   ptr(true),
		DestructiveHint: ptr(false),
	}
}

// fetchActivities pulls a page of recent activities, refreshing the cache on
// success and falling back to it when the API is unreachable.
func (s *Server) fetchActivities(ctx context.Context, perPage int) ([]strava.Activity, error) {
	activities, err := s.api.GetActivities(ctx, 1, perPage)
	if err != nil {
		if s.opts.Cache != nil {
			if cached, cacheErr := s.opts.Cache.RecentActivities(); cacheErr == nil && len(cached) > 0 {
				s.log.Warn("serving cached activities", "error", err)
				return cached, nil
			}
		}
		return nil, err
	}
	if s.opts.Cache != nil {
		if err := s.opts.Cache.ReplaceRecent(activities); err != nil {
			s.log.Warn("caching activities failed", "error", err)
		}
	}
	return activities, nil
}

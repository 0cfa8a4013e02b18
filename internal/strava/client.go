package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
)

// BaseURL is the Strava API v3 root. Overridable for tests.
const BaseURL = "https://www.strava.com/api/v3"

// DefaultStreamKeys matches the stream types the report surface summarizes.
const DefaultStreamKeys = "time,distance,heartrate,altitude,velocity_smooth"

// APIError is a non-2xx response from the Strava API. Callers report it as a
// single formatted string; status codes are not distinguished further.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
}

// Client is a Strava API client authenticated via an oauth2 token source.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *RateLimiter
}

// NewClient creates a client whose requests carry tokens from tokenSource.
func NewClient(tokenSource oauth2.TokenSource) *Client {
	return &Client{
		httpClient:  oauth2.NewClient(context.Background(), tokenSource),
		baseURL:     BaseURL,
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithBaseURL is NewClient pointed at a different API root.
func NewClientWithBaseURL(tokenSource oauth2.TokenSource, baseURL string) *Client {
	c := NewClient(tokenSource)
	c.baseURL = baseURL
	return c
}

// GetAthlete fetches the authenticated athlete's profile.
func (c *Client) GetAthlete(ctx context.Context) (*Athlete, error) {
	var athlete Athlete
	if err := c.getJSON(ctx, "/athlete", nil, &athlete); err != nil {
		return nil, err
	}
	return &athlete, nil
}

// GetAthleteStats fetches total and recent stats for an athlete.
func (c *Client) GetAthleteStats(ctx context.Context, athleteID int64) (*AthleteStats, error) {
	var stats AthleteStats
	path := fmt.Sprintf("/athletes/%d/stats", athleteID)
	if err := c.getJSON(ctx, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetActivities fetches a page of the athlete's activities, most recent
// first. perPage is clamped to the API maximum of 200.
func (c *Client) GetActivities(ctx context.Context, page, perPage int) ([]Activity, error) {
	if perPage > 200 {
		perPage = 200
	}
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	params.Set("per_page", strconv.Itoa(perPage))

	var activities []Activity
	if err := c.getJSON(ctx, "/athlete/activities", params, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity fetches the full detail of a single activity.
func (c *Client) GetActivity(ctx context.Context, activityID int64) (*Activity, error) {
	var activity Activity
	path := fmt.Sprintf("/activities/%d", activityID)
	if err := c.getJSON(ctx, path, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivityZones fetches the heart rate / power zone distributions of an
// activity.
func (c *Client) GetActivityZones(ctx context.Context, activityID int64) ([]ActivityZones, error) {
	var zones []ActivityZones
	path := fmt.Sprintf("/activities/%d/zones", activityID)
	if err := c.getJSON(ctx, path, nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetActivityLaps fetches the laps of an activity.
func (c *Client) GetActivityLaps(ctx context.Context, activityID int64) ([]Lap, error) {
	var laps []Lap
	path := fmt.Sprintf("/activities/%d/laps", activityID)
	if err := c.getJSON(ctx, path, nil, &laps); err != nil {
		return nil, err
	}
	return laps, nil
}

// GetActivityStreams fetches point-by-point streams keyed by type. keys is a
// comma-separated list; empty means DefaultStreamKeys.
func (c *Client) GetActivityStreams(ctx context.Context, activityID int64, keys string) (StreamSet, error) {
	if keys == "" {
		keys = DefaultStreamKeys
	}
	params := url.Values{}
	params.Set("keys", keys)
	params.Set("key_by_type", "true")

	var streams StreamSet
	path := fmt.Sprintf("/activities/%d/streams", activityID)
	if err := c.getJSON(ctx, path, params, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// ExploreSegments searches segments within a bounding box. bounds is
// "sw_lat,sw_lng,ne_lat,ne_lng"; activityType is "running" or "riding".
func (c *Client) ExploreSegments(ctx context.Context, bounds, activityType string) ([]ExploreSegment, error) {
	params := url.Values{}
	params.Set("bounds", bounds)
	params.Set("activity_type", activityType)

	var resp exploreResponse
	if err := c.getJSON(ctx, "/segments/explore", params, &resp); err != nil {
		return nil, err
	}
	return resp.Segments, nil
}

// GetSegment fetches the detail of a segment.
func (c *Client) GetSegment(ctx context.Context, segmentID int64) (*Segment, error) {
	var segment Segment
	path := fmt.Sprintf("/segments/%d", segmentID)
	if err := c.getJSON(ctx, path, nil, &segment); err != nil {
		return nil, err
	}
	return &segment, nil
}

// GetAthleteClubs fetches the clubs the athlete belongs to.
func (c *Client) GetAthleteClubs(ctx context.Context) ([]Club, error) {
	var clubs []Club
	if err := c.getJSON(ctx, "/athlete/clubs", nil, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// GetClub fetches the detail of a club.
func (c *Client) GetClub(ctx context.Context, clubID int64) (*Club, error) {
	var club Club
	path := fmt.Sprintf("/clubs/%d", clubID)
	if err := c.getJSON(ctx, path, nil, &club); err != nil {
		return nil, err
	}
	return &club, nil
}

// GetClubActivities fetches recent activities of a club's members.
func (c *Client) GetClubActivities(ctx context.Context, clubID int64, perPage int) ([]ClubActivity, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))

	var activities []ClubActivity
	path := fmt.Sprintf("/clubs/%d/activities", clubID)
	if err := c.getJSON(ctx, path, params, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetClubMembers fetches the member list of a club.
func (c *Client) GetClubMembers(ctx context.Context, clubID int64, perPage int) ([]ClubMember, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))

	var members []ClubMember
	path := fmt.Sprintf("/clubs/%d/members", clubID)
	if err := c.getJSON(ctx, path, params, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetRoute fetches the detail of a saved route.
func (c *Client) GetRoute(ctx context.Context, routeID int64) (*Route, error) {
	var route Route
	path := fmt.Sprintf("/routes/%d", routeID)
	if err := c.getJSON(ctx, path, nil, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// GetAthleteRoutes fetches an athlete's saved routes.
func (c *Client) GetAthleteRoutes(ctx context.Context, athleteID int64, perPage int) ([]Route, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))

	var routes []Route
	path := fmt.Sprintf("/athletes/%d/routes", athleteID)
	if err := c.getJSON(ctx, path, params, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// RateLimitStatus returns remaining requests in the 15-minute and daily
// windows.
func (c *Client) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return c.rateLimiter.Status()
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

package strava

// Optional upstream fields are pointers so that "absent" stays distinguishable
// from zero. Aggregation code must never coerce a nil metric to 0.

// Athlete is the authenticated athlete's profile.
type Athlete struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Firstname     string   `json:"firstname"`
	Lastname      string   `json:"lastname"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Profile       string   `json:"profile"` // photo URL; Strava sends a placeholder path when unset
	Weight        *float64 `json:"weight"` // kg
	FTP           *float64 `json:"ftp"`    // watts
	FriendCount   int      `json:"friend_count"`
	FollowerCount int      `json:"follower_count"`
}

// ActivityTotals is one bucket of the athlete stats response.
type ActivityTotals struct {
	Count         int     `json:"count"`
	Distance      float64 `json:"distance"`    // meters
	MovingTime    int     `json:"moving_time"` // seconds
	ElapsedTime   int     `json:"elapsed_time"`
	ElevationGain float64 `json:"elevation_gain"` // meters
}

// AthleteStats is the /athletes/{id}/stats response.
type AthleteStats struct {
	BiggestRideDistance       float64        `json:"biggest_ride_distance"`
	BiggestClimbElevationGain float64        `json:"biggest_climb_elevation_gain"`
	RecentRunTotals           ActivityTotals `json:"recent_run_totals"`
	AllRunTotals              ActivityTotals `json:"all_run_totals"`
	RecentRideTotals          ActivityTotals `json:"recent_ride_totals"`
	AllRideTotals             ActivityTotals `json:"all_ride_totals"`
}

// Map holds the encoded route polylines of an activity, segment or route.
// SummaryPolyline is present on list responses, Polyline only on detail.
type Map struct {
	ID              string `json:"id"`
	Polyline        string `json:"polyline"`
	SummaryPolyline string `json:"summary_polyline"`
}

// Best returns the highest-resolution polyline available.
func (m Map) Best() string {
	if m.Polyline != "" {
		return m.Polyline
	}
	return m.SummaryPolyline
}

// Activity is a Strava activity as returned by /athlete/activities and
// /activities/{id}. Detail-only fields (description, calories, device) are
// simply absent on list responses.
type Activity struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	SportType          string   `json:"sport_type"`
	StartDate          string   `json:"start_date"`
	StartDateLocal     string   `json:"start_date_local"`
	Timezone           string   `json:"timezone"`
	Distance           float64  `json:"distance"`             // meters
	MovingTime         int      `json:"moving_time"`          // seconds
	ElapsedTime        int      `json:"elapsed_time"`         // seconds
	TotalElevationGain float64  `json:"total_elevation_gain"` // meters
	AverageSpeed       float64  `json:"average_speed"`        // m/s
	MaxSpeed           float64  `json:"max_speed"`            // m/s
	AverageHeartrate   *float64 `json:"average_heartrate"`    // bpm
	MaxHeartrate       *float64 `json:"max_heartrate"`        // bpm
	AverageCadence     *float64 `json:"average_cadence"`
	AverageWatts       *float64 `json:"average_watts"`
	WeightedAvgWatts   *float64 `json:"weighted_average_watts"`
	Calories           *float64 `json:"calories"`
	Description        *string  `json:"description"`
	DeviceName         *string  `json:"device_name"`
	Map                Map      `json:"map"`
	HasHeartrate       bool     `json:"has_heartrate"`
}

// Date returns the local start date as YYYY-MM-DD.
func (a Activity) Date() string {
	if len(a.StartDateLocal) >= 10 {
		return a.StartDateLocal[:10]
	}
	return a.StartDateLocal
}

// ZoneBucket is one bucket of a zone distribution.
type ZoneBucket struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Time int     `json:"time"` // seconds spent in bucket
}

// ActivityZones is one entry of the /activities/{id}/zones response,
// typed "heartrate" or "power".
type ActivityZones struct {
	Type                string       `json:"type"`
	DistributionBuckets []ZoneBucket `json:"distribution_buckets"`
}

// Lap is one lap/split of an activity.
type Lap struct {
	Name             string   `json:"name"`
	LapIndex         int      `json:"lap_index"`
	Distance         float64  `json:"distance"`    // meters
	MovingTime       int      `json:"moving_time"` // seconds
	AverageSpeed     float64  `json:"average_speed"`
	AverageHeartrate *float64 `json:"average_heartrate"`
}

// Stream is a single stream of the key_by_type streams response.
type Stream struct {
	Data         []float64 `json:"data"`
	SeriesType   string    `json:"series_type"`
	OriginalSize int       `json:"original_size"`
	Resolution   string    `json:"resolution"`
}

// StreamSet is the keyed streams response. Missing keys were not requested
// or are unavailable for the activity.
type StreamSet map[string]Stream

// Segment is the /segments/{id} detail response.
type Segment struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ActivityType  string  `json:"activity_type"`
	Distance      float64 `json:"distance"` // meters
	AverageGrade  float64 `json:"average_grade"`
	MaximumGrade  float64 `json:"maximum_grade"`
	ElevationHigh float64 `json:"elevation_high"`
	ElevationLow  float64 `json:"elevation_low"`
	ClimbCategory int     `json:"climb_category"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	EffortCount   int     `json:"effort_count"`
	AthleteCount  int     `json:"athlete_count"`
	Map           Map     `json:"map"`
}

// ExploreSegment is one result of /segments/explore.
type ExploreSegment struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Distance       float64 `json:"distance"`
	AvgGrade       float64 `json:"avg_grade"`
	ElevDifference float64 `json:"elev_difference"`
	ClimbCategory  int     `json:"climb_category"`
}

type exploreResponse struct {
	Segments []ExploreSegment `json:"segments"`
}

// Club is a Strava club (summary or detail).
type Club struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	SportType   string  `json:"sport_type"`
	ClubType    string  `json:"club_type"`
	Description *string `json:"description"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	MemberCount int     `json:"member_count"`
	Profile     string  `json:"profile"`
	CoverPhoto  string  `json:"cover_photo"`
}

// ClubAthlete is the truncated athlete embedded in club feed entries.
type ClubAthlete struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// ClubActivity is one entry of /clubs/{id}/activities. Club feeds carry no
// activity IDs or dates, only summary numbers.
type ClubActivity struct {
	Athlete    ClubAthlete `json:"athlete"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Distance   float64     `json:"distance"`
	MovingTime int         `json:"moving_time"`
}

// ClubMember is one entry of /clubs/{id}/members.
type ClubMember struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// Route is a saved route.
type Route struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Distance      float64 `json:"distance"`       // meters
	ElevationGain float64 `json:"elevation_gain"` // meters
	Type          int     `json:"type"`           // 1 ride, 2 run
	SubType       int     `json:"sub_type"`
	Map           Map     `json:"map"`
}

// TypeLabel maps the numeric route type to a readable label.
func (r Route) TypeLabel() string {
	switch r.Type {
	case 1:
		return "Ride"
	case 2:
		return "Run"
	default:
		return "Other"
	}
}

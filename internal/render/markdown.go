package render

import (
	"fmt"
	"strings"

	"stride/internal/strava"
)

// Markdown report builders. Each takes a structured result and produces the
// text returned to the caller; no rendering happens inside the API or
// analysis layers.

// Profile renders the athlete profile.
func Profile(a *strava.Athlete) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🏃 %s %s\n\n", a.Firstname, a.Lastname)
	b.WriteString(photoImage("Profile photo", a.Profile))
	if a.Username != "" {
		fmt.Fprintf(&b, "- **Username:** %s\n", a.Username)
	}
	if loc := location(a.City, a.Country); loc != "" {
		fmt.Fprintf(&b, "- **Location:** %s\n", loc)
	}
	if a.Weight != nil {
		fmt.Fprintf(&b, "- **Weight:** %.1f kg\n", *a.Weight)
	}
	if a.FTP != nil {
		fmt.Fprintf(&b, "- **FTP:** %.0f W\n", *a.FTP)
	}
	fmt.Fprintf(&b, "- **Followers:** %d | **Following:** %d\n", a.FollowerCount, a.FriendCount)
	return b.String()
}

// Stats renders the athlete's activity totals.
func Stats(s *strava.AthleteStats) string {
	var b strings.Builder
	b.WriteString("## 📊 Athlete Stats\n\n")

	b.WriteString("### Running\n\n")
	totalsTable(&b, s.RecentRunTotals, s.AllRunTotals)

	b.WriteString("\n### Riding\n\n")
	totalsTable(&b, s.RecentRideTotals, s.AllRideTotals)

	if s.BiggestRideDistance > 0 {
		fmt.Fprintf(&b, "\n- **Biggest ride:** %s\n", Km(s.BiggestRideDistance))
	}
	if s.BiggestClimbElevationGain > 0 {
		fmt.Fprintf(&b, "- **Biggest climb:** %.0f m\n", s.BiggestClimbElevationGain)
	}
	return b.String()
}

func totalsTable(b *strings.Builder, recent, all strava.ActivityTotals) {
	b.WriteString("| Period | Activities | Distance | Time | Elevation |\n")
	b.WriteString("|---|---|---|---|---|\n")
	fmt.Fprintf(b, "| Last 4 weeks | %d | %s | %s | %.0f m |\n",
		recent.Count, Km(recent.Distance), Duration(recent.MovingTime), recent.ElevationGain)
	fmt.Fprintf(b, "| All time | %d | %s | %s | %.0f m |\n",
		all.Count, Km(all.Distance), Duration(all.MovingTime), all.ElevationGain)
}

// Activities renders a recent activity list.
func Activities(activities []strava.Activity) string {
	if len(activities) == 0 {
		return "No recent activities found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## 🏃 Recent Activities (%d)\n\n", len(activities))
	b.WriteString("| Date | Name | Type | Distance | Time | Pace | Avg HR |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, a := range activities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			a.Date(), a.Name, a.Type, Km(a.Distance), Duration(a.MovingTime),
			activityPace(a), optionalBPM(a.AverageHeartrate))
	}
	return b.String()
}

// ActivityDetail renders a single activity. mapURL may be "" to skip the
// route image.
func ActivityDetail(a *strava.Activity, mapURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🏃 %s\n\n", a.Name)
	b.WriteString(MapImage(mapURL))

	fmt.Fprintf(&b, "- **Date:** %s\n", a.Date())
	fmt.Fprintf(&b, "- **Type:** %s\n", a.Type)
	fmt.Fprintf(&b, "- **Distance:** %s\n", Km(a.Distance))
	fmt.Fprintf(&b, "- **Moving time:** %s (elapsed %s)\n", Duration(a.MovingTime), Duration(a.ElapsedTime))
	if p := activityPace(*a); p != "-" {
		fmt.Fprintf(&b, "- **Pace:** %s\n", p)
	}
	if a.AverageSpeed > 0 {
		fmt.Fprintf(&b, "- **Speed:** %s avg, %s max\n", SpeedKmh(a.AverageSpeed), SpeedKmh(a.MaxSpeed))
	}
	if a.AverageHeartrate != nil {
		fmt.Fprintf(&b, "- **Heart rate:** %.0f bpm avg", *a.AverageHeartrate)
		if a.MaxHeartrate != nil {
			fmt.Fprintf(&b, ", %.0f bpm max", *a.MaxHeartrate)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- **Elevation gain:** %.0f m\n", a.TotalElevationGain)
	if a.AverageCadence != nil {
		fmt.Fprintf(&b, "- **Cadence:** %.0f\n", *a.AverageCadence)
	}
	if a.AverageWatts != nil {
		fmt.Fprintf(&b, "- **Power:** %.0f W avg", *a.AverageWatts)
		if a.WeightedAvgWatts != nil {
			fmt.Fprintf(&b, " (%.0f W weighted)", *a.WeightedAvgWatts)
		}
		b.WriteString("\n")
	}
	if a.Calories != nil {
		fmt.Fprintf(&b, "- **Calories:** %.0f\n", *a.Calories)
	}
	if a.DeviceName != nil {
		fmt.Fprintf(&b, "- **Device:** %s\n", *a.DeviceName)
	}
	if a.Description != nil && *a.Description != "" {
		fmt.Fprintf(&b, "\n> %s\n", *a.Description)
	}
	return b.String()
}

// Zones renders heart rate / power zone distributions.
func Zones(zones []strava.ActivityZones) string {
	if len(zones) == 0 {
		return "No zone data available for this activity."
	}
	var b strings.Builder
	b.WriteString("## 📈 Zone Distribution\n\n")
	for _, z := range zones {
		fmt.Fprintf(&b, "### %s\n\n", titleCase(z.Type))
		b.WriteString("| Zone | Range | Time |\n|---|---|---|\n")
		for i, bucket := range z.DistributionBuckets {
			rangeLabel := fmt.Sprintf("%.0f-%.0f", bucket.Min, bucket.Max)
			if bucket.Max < 0 {
				rangeLabel = fmt.Sprintf("%.0f+", bucket.Min)
			}
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, rangeLabel, Duration(bucket.Time))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Laps renders activity laps.
func Laps(laps []strava.Lap) string {
	if len(laps) == 0 {
		return "No lap data available for this activity."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## ⏱ Laps (%d)\n\n", len(laps))
	b.WriteString("| Lap | Distance | Time | Pace | Avg HR |\n|---|---|---|---|---|\n")
	for _, l := range laps {
		pace := "-"
		if l.Distance > 0 && l.MovingTime > 0 {
			pace = Pace(float64(l.MovingTime) / 60 / (l.Distance / 1000))
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			l.LapIndex, Km(l.Distance), Duration(l.MovingTime), pace, optionalBPM(l.AverageHeartrate))
	}
	return b.String()
}

// Streams renders a summary of activity streams rather than dumping raw
// samples.
func Streams(streams strava.StreamSet) string {
	if len(streams) == 0 {
		return "No stream data available for this activity."
	}
	var b strings.Builder
	b.WriteString("## 📉 Streams\n\n")
	b.WriteString("| Stream | Samples | Min | Max | Avg |\n|---|---|---|---|---|\n")
	for _, key := range []string{"time", "distance", "heartrate", "altitude", "velocity_smooth", "cadence", "watts", "temp", "grade_smooth"} {
		s, ok := streams[key]
		if !ok || len(s.Data) == 0 {
			continue
		}
		min, max, sum := s.Data[0], s.Data[0], 0.0
		for _, v := range s.Data {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f | %.1f | %.1f |\n",
			key, len(s.Data), min, max, sum/float64(len(s.Data)))
	}
	return b.String()
}

// ExploreSegments renders segment search results.
func ExploreSegments(segments []strava.ExploreSegment) string {
	if len(segments) == 0 {
		return "No segments found in this area."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## 🗺 Segments (%d)\n\n", len(segments))
	b.WriteString("| ID | Name | Distance | Avg Grade | Elev Diff |\n|---|---|---|---|---|\n")
	for _, s := range segments {
		fmt.Fprintf(&b, "| %d | %s | %s | %.1f%% | %.0f m |\n",
			s.ID, s.Name, Km(s.Distance), s.AvgGrade, s.ElevDifference)
	}
	return b.String()
}

// SegmentDetail renders a single segment. mapURL may be "".
func SegmentDetail(s *strava.Segment, mapURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🗺 %s\n\n", s.Name)
	b.WriteString(MapImage(mapURL))
	fmt.Fprintf(&b, "- **Type:** %s\n", s.ActivityType)
	fmt.Fprintf(&b, "- **Distance:** %s\n", Km(s.Distance))
	fmt.Fprintf(&b, "- **Grade:** %.1f%% avg, %.1f%% max\n", s.AverageGrade, s.MaximumGrade)
	fmt.Fprintf(&b, "- **Elevation:** %.0f m to %.0f m\n", s.ElevationLow, s.ElevationHigh)
	if loc := location(s.City, s.Country); loc != "" {
		fmt.Fprintf(&b, "- **Location:** %s\n", loc)
	}
	fmt.Fprintf(&b, "- **Efforts:** %d by %d athletes\n", s.EffortCount, s.AthleteCount)
	return b.String()
}

// Clubs renders the athlete's club list.
func Clubs(clubs []strava.Club) string {
	if len(clubs) == 0 {
		return "You are not a member of any clubs."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## 👥 Clubs (%d)\n\n", len(clubs))
	b.WriteString("| ID | Name | Sport | Location | Members |\n|---|---|---|---|---|\n")
	for _, c := range clubs {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %d |\n",
			c.ID, c.Name, c.SportType, location(c.City, c.Country), c.MemberCount)
	}
	return b.String()
}

// ClubDetail renders a single club.
func ClubDetail(c *strava.Club) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 👥 %s\n\n", c.Name)
	photo := c.CoverPhoto
	if photo == "" {
		photo = c.Profile
	}
	b.WriteString(photoImage("Club photo", photo))
	fmt.Fprintf(&b, "- **Sport:** %s\n", c.SportType)
	if loc := location(c.City, c.Country); loc != "" {
		fmt.Fprintf(&b, "- **Location:** %s\n", loc)
	}
	fmt.Fprintf(&b, "- **Members:** %d\n", c.MemberCount)
	if c.Description != nil && *c.Description != "" {
		fmt.Fprintf(&b, "\n> %s\n", *c.Description)
	}
	return b.String()
}

// ClubActivities renders a club's recent activity feed.
func ClubActivities(activities []strava.ClubActivity) string {
	if len(activities) == 0 {
		return "No recent club activities."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## 👥 Club Activities (%d)\n\n", len(activities))
	b.WriteString("| Athlete | Activity | Type | Distance | Time |\n|---|---|---|---|---|\n")
	for _, a := range activities {
		fmt.Fprintf(&b, "| %s %s | %s | %s | %s | %s |\n",
			a.Athlete.Firstname, a.Athlete.Lastname, a.Name, a.Type,
			Km(a.Distance), Duration(a.MovingTime))
	}
	return b.String()
}

// ClubMembers renders a club member list.
func ClubMembers(members []strava.ClubMember) string {
	if len(members) == 0 {
		return "No members found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## 👥 Members (%d)\n\n", len(members))
	for _, m := range members {
		fmt.Fprintf(&b, "- %s %s", m.Firstname, m.Lastname)
		if loc := location(m.City, m.Country); loc != "" {
			fmt.Fprintf(&b, " (%s)", loc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Routes renders the athlete's saved routes.
func Routes(routes []strava.Route) string {
	if len(routes) == 0 {
		return "No saved routes found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## 🗺 Routes (%d)\n\n", len(routes))
	b.WriteString("| ID | Name | Type | Distance | Elevation |\n|---|---|---|---|---|\n")
	for _, r := range routes {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %.0f m |\n",
			r.ID, r.Name, r.TypeLabel(), Km(r.Distance), r.ElevationGain)
	}
	return b.String()
}

// RouteDetail renders a single route. mapURL may be "".
func RouteDetail(r *strava.Route, mapURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 🗺 %s\n\n", r.Name)
	b.WriteString(MapImage(mapURL))
	fmt.Fprintf(&b, "- **Type:** %s\n", r.TypeLabel())
	fmt.Fprintf(&b, "- **Distance:** %s\n", Km(r.Distance))
	fmt.Fprintf(&b, "- **Elevation gain:** %.0f m\n", r.ElevationGain)
	if r.Description != nil && *r.Description != "" {
		fmt.Fprintf(&b, "\n> %s\n", *r.Description)
	}
	return b.String()
}

func activityPace(a strava.Activity) string {
	if a.Distance <= 0 || a.MovingTime <= 0 {
		return "-"
	}
	return Pace(float64(a.MovingTime) / 60 / (a.Distance / 1000))
}

func optionalBPM(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f bpm", *v)
}

// photoImage renders a Markdown image for an upstream photo URL. Strava
// sends a bare placeholder path like "avatar/athlete/large.png" when no
// photo is set, so only absolute URLs count.
func photoImage(alt, url string) string {
	if !strings.HasPrefix(url, "http") {
		return ""
	}
	return fmt.Sprintf("![%s](%s)\n\n", alt, url)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func location(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}

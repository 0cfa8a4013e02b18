package render

import (
	"fmt"
	"net/url"
)

// MapURL builds a Google static map URL tracing the given encoded polyline.
// It returns "" when either the polyline or the API key is missing, so
// callers can unconditionally pass the result to MapImage.
func MapURL(polyline, apiKey, size string) string {
	if polyline == "" || apiKey == "" {
		return ""
	}
	if size == "" {
		size = "600x400"
	}
	q := url.Values{}
	q.Set("size", size)
	q.Set("maptype", "roadmap")
	q.Set("path", "color:0xff0000ff|weight:3|enc:"+polyline)
	q.Set("key", apiKey)
	return "https://maps.googleapis.com/maps/api/staticmap?" + q.Encode()
}

// MapImage renders a Markdown image for a map URL, or "" for an empty URL.
func MapImage(mapURL string) string {
	if mapURL == "" {
		return ""
	}
	return fmt.Sprintf("![Route map](%s)\n\n", mapURL)
}

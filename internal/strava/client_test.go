package strava

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	c := NewClientWithBaseURL(ts, srv.URL)
	// Tests should not wait out the pacing interval.
	c.rateLimiter.minInterval = 0
	return c
}

func TestGetAthlete(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/athlete" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"id": 7, "firstname": "Jo", "lastname": "Runner", "weight": 61.5}`))
	})

	athlete, err := c.GetAthlete(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if athlete.ID != 7 || athlete.Firstname != "Jo" {
		t.Errorf("unexpected athlete: %+v", athlete)
	}
	if athlete.Weight == nil || *athlete.Weight != 61.5 {
		t.Errorf("weight = %v, want 61.5", athlete.Weight)
	}
	if athlete.FTP != nil {
		t.Error("absent FTP should stay nil")
	}
}

func TestGetActivitiesClampsPerPage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("per_page"); got != "200" {
			t.Errorf("per_page = %s, want 200", got)
		}
		w.Write([]byte(`[{"id": 1, "name": "Run", "type": "Run", "start_date_local": "2026-01-20T07:00:00Z", "average_heartrate": 151.2}]`))
	})

	activities, err := c.GetActivities(context.Background(), 0, 500)
	if err != nil {
		t.Fatal(err)
	}
	if len(activities) != 1 {
		t.Fatalf("got %d activities", len(activities))
	}
	a := activities[0]
	if a.Date() != "2026-01-20" {
		t.Errorf("Date() = %q", a.Date())
	}
	if a.AverageHeartrate == nil || *a.AverageHeartrate != 151.2 {
		t.Errorf("heartrate = %v", a.AverageHeartrate)
	}
	if a.MaxHeartrate != nil {
		t.Error("absent max heartrate should stay nil")
	}
}

func TestAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Record Not Found"}`))
	})

	_, err := c.GetActivity(context.Background(), 99)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status = %d", apiErr.Status)
	}
}

func TestGetActivityStreamsDefaultKeys(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("keys"); got != DefaultStreamKeys {
			t.Errorf("keys = %q, want default set", got)
		}
		if got := r.URL.Query().Get("key_by_type"); got != "true" {
			t.Errorf("key_by_type = %q", got)
		}
		w.Write([]byte(`{"heartrate": {"data": [140, 150, 160], "original_size": 3}}`))
	})

	streams, err := c.GetActivityStreams(context.Background(), 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(streams["heartrate"].Data) != 3 {
		t.Errorf("unexpected streams: %+v", streams)
	}
}

func TestRateLimitSyncsFromHeaders(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "100,1000")
		w.Header().Set("X-RateLimit-Usage", "34,512")
		w.Write([]byte(`{"id": 7}`))
	})

	if _, err := c.GetAthlete(context.Background()); err != nil {
		t.Fatal(err)
	}
	short, daily := c.RateLimitStatus()
	if short != 66 || daily != 488 {
		t.Errorf("remaining = %d, %d; want 66, 488", short, daily)
	}
}

func TestMapBest(t *testing.T) {
	m := Map{Polyline: "full", SummaryPolyline: "summary"}
	if m.Best() != "full" {
		t.Error("detail polyline should win")
	}
	m.Polyline = ""
	if m.Best() != "summary" {
		t.Error("summary polyline should be the fallback")
	}
}

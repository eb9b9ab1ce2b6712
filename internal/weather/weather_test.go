package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return ts
}

func TestAggregateDaily_CarryForward(t *testing.T) {
	today := day(t, "2026-01-05")

	// 3-hour samples spanning exactly two calendar days.
	samples := []sample{
		{ts: today.Add(3 * time.Hour), temp: 40, humidity: 60, condition: "Clouds"},
		{ts: today.Add(9 * time.Hour), temp: 48, humidity: 70, condition: "Rain"},
		{ts: today.Add(15 * time.Hour), temp: 44, humidity: 80, condition: "Rain"},
		{ts: today.Add(27 * time.Hour), temp: 30, humidity: 50, condition: "Snow"},
		{ts: today.Add(33 * time.Hour), temp: 36, humidity: 54, condition: "Snow"},
	}

	forecasts := aggregateDaily(samples, today, 7)
	if len(forecasts) != 7 {
		t.Fatalf("got %d days, want 7", len(forecasts))
	}

	if forecasts[0].High != 48 || forecasts[0].Low != 40 {
		t.Errorf("day 1 high/low = %v/%v, want 48/40", forecasts[0].High, forecasts[0].Low)
	}
	if forecasts[0].Condition != "Rain" {
		t.Errorf("day 1 condition = %q, want Rain", forecasts[0].Condition)
	}
	if forecasts[0].Humidity != 70 {
		t.Errorf("day 1 humidity = %v, want 70", forecasts[0].Humidity)
	}
	if forecasts[1].High != 36 || forecasts[1].Low != 30 || forecasts[1].Condition != "Snow" {
		t.Errorf("day 2 = %+v, want 36/30 Snow", forecasts[1])
	}

	// Days 3-7 repeat day 2's values with advancing dates.
	for i := 2; i < 7; i++ {
		f := forecasts[i]
		if f.High != 36 || f.Low != 30 || f.Condition != "Snow" || f.Humidity != forecasts[1].Humidity {
			t.Errorf("day %d should carry day 2 forward, got %+v", i+1, f)
		}
		wantDate := today.AddDate(0, 0, i).Format("2006-01-02")
		if f.Date != wantDate {
			t.Errorf("day %d date = %q, want %q", i+1, f.Date, wantDate)
		}
	}
}

func TestAggregateDaily_SeedsFromEarliestBucket(t *testing.T) {
	today := day(t, "2026-01-05")

	// No samples for today; the feed starts two days out.
	samples := []sample{
		{ts: today.Add(50 * time.Hour), temp: 60, humidity: 40, condition: "Clear"},
		{ts: today.Add(56 * time.Hour), temp: 70, humidity: 44, condition: "Clear"},
	}

	forecasts := aggregateDaily(samples, today, 7)
	if len(forecasts) != 7 {
		t.Fatalf("got %d days, want 7", len(forecasts))
	}
	if forecasts[0].High != 70 || forecasts[0].Low != 60 {
		t.Errorf("day 1 should seed from the earliest bucket, got %+v", forecasts[0])
	}
	if forecasts[0].Date != "2026-01-05" {
		t.Errorf("day 1 date = %q, want today", forecasts[0].Date)
	}
}

func TestAggregateDaily_NoSamples(t *testing.T) {
	if got := aggregateDaily(nil, day(t, "2026-01-05"), 7); len(got) != 0 {
		t.Errorf("no samples should produce no days, got %d", len(got))
	}
}

func TestReduceDay_ConditionModeTieBreak(t *testing.T) {
	samples := []sample{
		{temp: 50, humidity: 50, condition: "Clouds"},
		{temp: 52, humidity: 50, condition: "Rain"},
		{temp: 54, humidity: 50, condition: "Rain"},
		{temp: 56, humidity: 50, condition: "Clouds"},
	}
	// Two-way tie: the first-seen condition wins.
	if got := reduceDay("2026-01-05", samples); got.Condition != "Clouds" {
		t.Errorf("condition = %q, want first-seen Clouds", got.Condition)
	}
}

func TestNarrativeBands(t *testing.T) {
	tests := []struct {
		name string
		high float64
		low  float64
		want string
	}{
		{"hot", 90, 70, "cooling costs"},
		{"cold", 50, 30, "heating costs"},
		{"moderate", 70, 55, "Moderate temperatures"},
	}

	for _, tt := range tests {
		forecasts := aggregateDaily([]sample{
			{ts: day(t, "2026-01-05").Add(3 * time.Hour), temp: tt.high, humidity: 50, condition: "Clear"},
			{ts: day(t, "2026-01-05").Add(9 * time.Hour), temp: tt.low, humidity: 50, condition: "Clear"},
		}, day(t, "2026-01-05"), 7)

		_, impact, tip := narrative(forecasts)
		if !strings.Contains(impact, tt.want) {
			t.Errorf("%s: impact %q does not mention %q", tt.name, impact, tt.want)
		}
		if tip == "" {
			t.Errorf("%s: expected a non-empty tip", tt.name)
		}
	}
}

func TestForecast_MissingAPIKey(t *testing.T) {
	c := NewClient(Config{})
	got := c.Forecast(context.Background(), "297 INDIGO WAY ALLENTOWN, PA 18104")
	if len(got.Forecasts) != 0 {
		t.Errorf("degraded result should have no forecasts, got %d", len(got.Forecasts))
	}
	if got.Summary == "" || got.EnergyImpact == "" || got.Tip == "" {
		t.Error("degraded result should carry explanatory strings")
	}
}

func TestForecast_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	got := c.Forecast(context.Background(), "ALLENTOWN, PA 18104")
	if len(got.Forecasts) != 0 {
		t.Errorf("HTTP failure should degrade, got %d forecasts", len(got.Forecasts))
	}
	if got.Summary != Degraded().Summary {
		t.Errorf("got summary %q, want degraded copy", got.Summary)
	}
}

func TestForecast_EndToEnd(t *testing.T) {
	now := day(t, "2026-07-06") // midnight UTC so both samples land on day 1
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/geo/1.0/direct"):
			fmt.Fprint(w, `[{"lat":40.6084,"lon":-75.4902}]`)
		case strings.HasPrefix(r.URL.Path, "/data/2.5/forecast"):
			if got := r.URL.Query().Get("units"); got != "imperial" {
				t.Errorf("units = %q, want imperial", got)
			}
			resp := map[string]any{
				"list": []map[string]any{
					{"dt": now.Add(2 * time.Hour).Unix(), "main": map[string]any{"temp": 82.0, "humidity": 60.0}, "weather": []map[string]any{{"main": "Clear"}}},
					{"dt": now.Add(5 * time.Hour).Unix(), "main": map[string]any{"temp": 91.0, "humidity": 55.0}, "weather": []map[string]any{{"main": "Clear"}}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	c.now = func() time.Time { return now }
	got := c.Forecast(context.Background(), "297 INDIGO WAY ALLENTOWN, PA 18104")
	if len(got.Forecasts) != 7 {
		t.Fatalf("got %d forecasts, want 7", len(got.Forecasts))
	}
	if got.Forecasts[0].High != 91 || got.Forecasts[0].Low != 82 {
		t.Errorf("day 1 high/low = %v/%v, want 91/82", got.Forecasts[0].High, got.Forecasts[0].Low)
	}
	if !strings.Contains(got.EnergyImpact, "cooling costs") {
		t.Errorf("hot week should produce the cooling-impact narrative, got %q", got.EnergyImpact)
	}
}

func TestGeocodeFallbackChain(t *testing.T) {
	var directQueries []string
	var zipQueried string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/geo/1.0/direct"):
			directQueries = append(directQueries, r.URL.Query().Get("q"))
			fmt.Fprint(w, `[]`) // no match for either direct attempt
		case strings.HasPrefix(r.URL.Path, "/geo/1.0/zip"):
			zipQueried = r.URL.Query().Get("zip")
			fmt.Fprint(w, `{"lat":40.55,"lon":-75.52}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	lat, lon := c.geocode(context.Background(), "297 INDIGO WAY ALLENTOWN, PA 18104")

	if len(directQueries) != 2 {
		t.Fatalf("expected 2 direct geocode attempts, got %d (%v)", len(directQueries), directQueries)
	}
	if directQueries[0] != "297 INDIGO WAY ALLENTOWN, PA 18104" {
		t.Errorf("first attempt should use the full address, got %q", directQueries[0])
	}
	if !strings.Contains(directQueries[1], "ALLENTOWN, PA") {
		t.Errorf("second attempt should use the city/state substring, got %q", directQueries[1])
	}
	if zipQueried != "18104,US" {
		t.Errorf("zip attempt = %q, want 18104,US", zipQueried)
	}
	if lat != 40.55 || lon != -75.52 {
		t.Errorf("coords = %v,%v, want the zip endpoint's result", lat, lon)
	}
}

func TestGeocodeDefaultCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	lat, lon := c.geocode(context.Background(), "nowhere in particular")
	if lat != fallbackLat || lon != fallbackLon {
		t.Errorf("coords = %v,%v, want the default service-area coordinate", lat, lon)
	}
}

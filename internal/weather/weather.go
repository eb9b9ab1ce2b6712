// Package weather turns a free-text service address into a 7-day
// energy-impact panel using the OpenWeatherMap geocoding and 5-day/3-hour
// forecast APIs. The Forecast contract never fails: every error path
// degrades to a valid WeatherData with an empty forecast list.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/kaipengyu/ppl-small-win/internal/core"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Default coordinate when every geocoding strategy fails: Allentown, PA,
// a representative town in the service area.
const (
	fallbackLat = 40.6084
	fallbackLon = -75.4902
)

var (
	cityStateRe = regexp.MustCompile(`([A-Za-z\s]+),\s*([A-Za-z]{2})\s*(\d{5})?`)
	zipRe       = regexp.MustCompile(`\b\d{5}\b`)
)

// Config holds the aggregator's construction-time settings. The API key
// is injected here, never read from the environment per call.
type Config struct {
	APIKey  string
	BaseURL string // defaults to the public OpenWeatherMap host
	Timeout time.Duration
}

// Client fetches and reduces forecasts for service addresses.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time // override in tests
}

// NewClient creates a weather client. With no API key the client is
// still usable and degrades on every call.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.Get(),
		now:        time.Now,
	}
}

// sample is one 3-hour forecast slot, already flattened from the API shape.
type sample struct {
	ts        time.Time
	temp      float64
	humidity  float64
	condition string
}

// forecastResponse mirrors the subset of the 5-day/3-hour endpoint we read.
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Forecast resolves the address, fetches the multi-day feed and reduces it
// to seven daily summaries plus an energy-impact narrative. It never
// returns an error; failures produce a degraded but valid value.
func (c *Client) Forecast(ctx context.Context, address string) core.WeatherData {
	if c.apiKey == "" {
		c.log.Warn("weather API key not configured, returning degraded forecast")
		return Degraded()
	}

	lat, lon := c.geocode(ctx, address)

	samples, err := c.fetchSamples(ctx, lat, lon)
	if err != nil {
		c.log.Warn("forecast fetch failed", "error", err)
		return Degraded()
	}

	forecasts := aggregateDaily(samples, c.now().UTC(), 7)
	if len(forecasts) == 0 {
		return Degraded()
	}

	summary, impact, tip := narrative(forecasts)
	return core.WeatherData{
		Forecasts:    forecasts,
		Summary:      summary,
		EnergyImpact: impact,
		Tip:          tip,
	}
}

// Degraded is the fixed fallback value shown when no forecast is available.
func Degraded() core.WeatherData {
	return core.WeatherData{
		Summary:      "Unable to fetch weather data at this time.",
		EnergyImpact: "Weather data is needed to analyze energy impact.",
		Tip:          "Check back later for weather-based energy tips.",
	}
}

// geocode resolves an address to coordinates, degrading through three
// strategies: the full address, a "City, ST ZIP" substring, and a bare
// 5-digit ZIP against the zip endpoint. Each strategy runs only when the
// previous one failed; when all fail the default service-area coordinate
// is used. geocode itself never fails.
func (c *Client) geocode(ctx context.Context, address string) (lat, lon float64) {
	if lat, lon, ok := c.geocodeDirect(ctx, address); ok {
		return lat, lon
	}

	if m := cityStateRe.FindString(address); m != "" {
		c.log.Debug("retrying geocode with city/state", "query", m)
		if lat, lon, ok := c.geocodeDirect(ctx, m); ok {
			return lat, lon
		}
	}

	if zip := zipRe.FindString(address); zip != "" {
		c.log.Debug("retrying geocode with zip code", "zip", zip)
		if lat, lon, ok := c.geocodeZip(ctx, zip); ok {
			return lat, lon
		}
	}

	c.log.Warn("geocoding failed, using default service-area location", "address", address)
	return fallbackLat, fallbackLon
}

func (c *Client) geocodeDirect(ctx context.Context, query string) (lat, lon float64, ok bool) {
	u := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s", c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	var results []geoResult
	if err := c.getJSON(ctx, u, &results); err != nil {
		c.log.Debug("geocode request failed", "query", query, "error", err)
		return 0, 0, false
	}
	if len(results) == 0 {
		return 0, 0, false
	}
	return results[0].Lat, results[0].Lon, true
}

func (c *Client) geocodeZip(ctx context.Context, zip string) (lat, lon float64, ok bool) {
	u := fmt.Sprintf("%s/geo/1.0/zip?zip=%s,US&appid=%s", c.baseURL, url.QueryEscape(zip), url.QueryEscape(c.apiKey))

	// The zip endpoint returns a single object, not an array.
	var result geoResult
	if err := c.getJSON(ctx, u, &result); err != nil {
		c.log.Debug("zip geocode request failed", "zip", zip, "error", err)
		return 0, 0, false
	}
	if result.Lat == 0 && result.Lon == 0 {
		return 0, 0, false
	}
	return result.Lat, result.Lon, true
}

func (c *Client) fetchSamples(ctx context.Context, lat, lon float64) ([]sample, error) {
	u := fmt.Sprintf("%s/data/2.5/forecast?lat=%f&lon=%f&units=imperial&appid=%s", c.baseURL, lat, lon, url.QueryEscape(c.apiKey))

	var resp forecastResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}

	samples := make([]sample, 0, len(resp.List))
	for _, item := range resp.List {
		s := sample{
			ts:       time.Unix(item.Dt, 0).UTC(),
			temp:     item.Main.Temp,
			humidity: item.Main.Humidity,
		}
		if len(item.Weather) > 0 {
			s.condition = item.Weather[0].Main
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API error (status %d): %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// aggregateDaily buckets samples by UTC calendar date and reduces each of
// the next `days` days starting at today: high = max, low = min, humidity
// = rounded mean, condition = first-seen mode. Days without a bucket carry
// the previous day's values forward; when the very first days are missing
// the earliest available bucket seeds them.
func aggregateDaily(samples []sample, today time.Time, days int) []core.Forecast {
	buckets := make(map[string][]sample)
	earliest := ""
	for _, s := range samples {
		key := s.ts.Format("2006-01-02")
		buckets[key] = append(buckets[key], s)
		if earliest == "" || key < earliest {
			earliest = key
		}
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	forecasts := make([]core.Forecast, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")

		switch {
		case len(buckets[key]) > 0:
			forecasts = append(forecasts, reduceDay(key, buckets[key]))
		case len(forecasts) > 0:
			// Flat carry-forward of the last computed day.
			prev := forecasts[len(forecasts)-1]
			prev.Date = key
			forecasts = append(forecasts, prev)
		case earliest != "":
			seeded := reduceDay(key, buckets[earliest])
			forecasts = append(forecasts, seeded)
		}
	}
	return forecasts
}

func reduceDay(date string, day []sample) core.Forecast {
	high := day[0].temp
	low := day[0].temp
	var humiditySum float64
	counts := make(map[string]int)
	mode := day[0].condition

	for _, s := range day {
		if s.temp > high {
			high = s.temp
		}
		if s.temp < low {
			low = s.temp
		}
		humiditySum += s.humidity
		counts[s.condition]++
	}
	// Ties break toward the first-seen condition.
	for _, s := range day {
		if counts[s.condition] > counts[mode] {
			mode = s.condition
		}
	}

	return core.Forecast{
		Date:      date,
		High:      math.Round(high),
		Low:       math.Round(low),
		Condition: mode,
		Humidity:  math.Round(humiditySum / float64(len(day))),
	}
}

// narrative reduces the daily summaries to the overall copy: mean of the
// highs and lows averaged together, classified into hot (>75F), cold
// (<50F) and moderate bands.
func narrative(forecasts []core.Forecast) (summary, energyImpact, tip string) {
	var highSum, lowSum float64
	for _, f := range forecasts {
		highSum += f.High
		lowSum += f.Low
	}
	avgHigh := highSum / float64(len(forecasts))
	avgLow := lowSum / float64(len(forecasts))
	avgTemp := (avgHigh + avgLow) / 2

	summary = fmt.Sprintf("The next week shows average temperatures of %.0f°F high and %.0f°F low.", math.Round(avgHigh), math.Round(avgLow))

	switch {
	case avgTemp > 75:
		energyImpact = "With temperatures averaging above 75°F, you can expect increased cooling costs. Air conditioning usage typically increases by 15-25% during hot weather periods."
		tip = "Set your thermostat to 78°F when home and 85°F when away to reduce cooling costs. Consider using ceiling fans to feel 4-6°F cooler."
	case avgTemp < 50:
		energyImpact = "With temperatures averaging below 50°F, heating costs will be higher. Electric heating usage can increase by 20-30% during cold snaps."
		tip = "Seal drafts around windows and doors to prevent heat loss. Lower your thermostat by 7-10°F when sleeping or away to save up to 10% on heating costs."
	default:
		energyImpact = "Moderate temperatures this week mean lower heating and cooling demands. This is an ideal time for energy-efficient operation."
		tip = "Take advantage of mild weather by opening windows for natural ventilation instead of using HVAC systems."
	}
	return summary, energyImpact, tip
}

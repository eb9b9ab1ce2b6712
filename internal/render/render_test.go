package render

import (
	"strings"
	"testing"

	"github.com/kaipengyu/ppl-small-win/internal/core"
)

func sampleDashboard() core.Dashboard {
	return core.Dashboard{
		FileName: "bill.pdf",
		Bill: core.BillData{
			CustomerName:    "Jordan Smith",
			ServiceAddress:  "123 Main St, Allentown, PA 18104",
			AmountDue:       182.45,
			DueDate:         "2026-08-01",
			EnergyTip:       "Wash clothes in cold water",
			EnergySaverRank: core.RankAllStar,
			NextRank:        "G.O.A.T.",
			PercentToNextLevel: 8,
			MonthlyComparison: core.MonthlyComparison{
				Month:             "July",
				LabelPreviousYear: "2025",
				LabelCurrentYear:  "2026",
				UsagePrevious:     1000,
				UsageCurrent:      880,
			},
		},
		Rebate: core.RebateOption{
			Name:        "Whole-Home Energy Audit",
			Amount:      "$100",
			Description: "A full in-home assessment.",
			Reason:      "Your usage is high for this time of year.",
		},
		HouseholdTip:       "Seal gaps with weatherstripping.",
		UsageChangePercent: -12,
		RankProgressArc:    75,
		Weather: core.WeatherData{
			Forecasts: []core.Forecast{
				{Date: "2026-07-06", High: 88, Low: 70, Condition: "Clear", Humidity: 55},
			},
			Summary: "Hot stretch ahead.",
		},
	}
}

func TestDashboardRendersEverySection(t *testing.T) {
	out := Dashboard(sampleDashboard())

	for _, want := range []string{
		"bill.pdf",
		"All-Star",
		"G.O.A.T.",
		"Jordan Smith",
		"182.45",
		"Whole-Home Energy Audit",
		"Seal gaps with weatherstripping.",
		"Wash clothes in cold water",
		"2026-07-06",
		"Hot stretch ahead.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestProgressRing(t *testing.T) {
	tests := []struct {
		arc    float64
		filled int
	}{
		{0, 0},
		{25, 5},
		{50, 10},
		{75, 15},
		{100, 20},
		{150, 20},
		{-10, 0},
	}
	for _, tt := range tests {
		ring := progressRing(tt.arc)
		if got := strings.Count(ring, "█"); got != tt.filled {
			t.Errorf("progressRing(%v) filled = %d, want %d", tt.arc, got, tt.filled)
		}
		if got := strings.Count(ring, "░"); got != ringWidth-tt.filled {
			t.Errorf("progressRing(%v) empty = %d, want %d", tt.arc, got, ringWidth-tt.filled)
		}
	}
}

func TestWeatherEmpty(t *testing.T) {
	if out := Weather(core.WeatherData{}); out != "" {
		t.Errorf("empty weather should render nothing, got %q", out)
	}
}

func TestWeatherDegradedPanelStillRenders(t *testing.T) {
	out := Weather(core.WeatherData{
		Summary:      "Unable to fetch weather data at this time.",
		EnergyImpact: "Weather-based energy insights are temporarily unavailable.",
	})
	if !strings.Contains(out, "Unable to fetch weather data at this time.") {
		t.Errorf("degraded summary missing: %q", out)
	}
}

func TestUsageChangeDirection(t *testing.T) {
	if got := usageChange(-12); !strings.Contains(got, "-12.0%") {
		t.Errorf("negative change = %q", got)
	}
	if got := usageChange(5); !strings.Contains(got, "+5.0%") {
		t.Errorf("positive change = %q", got)
	}
}

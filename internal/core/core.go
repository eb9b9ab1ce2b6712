package core

import "time"

// Rank is a four-tier Energy Saver badge derived from year-over-year
// usage reduction.
type Rank string

const (
	RankAmateur Rank = "Amateur"
	RankPro     Rank = "Pro"
	RankAllStar Rank = "All-Star"
	RankGOAT    Rank = "G.O.A.T."
)

// MonthlyComparison holds the usage comparison table from the bill:
// the same month across two years.
type MonthlyComparison struct {
	Month             string  `json:"month"`             // Month name for the comparison (e.g. November)
	LabelPreviousYear string  `json:"labelPreviousYear"` // Year label for the previous column (e.g. 2024)
	LabelCurrentYear  string  `json:"labelCurrentYear"`  // Year label for the current column (e.g. 2025)
	UsagePrevious     float64 `json:"usagePrevious"`     // Electricity usage (kWh), previous year
	UsageCurrent      float64 `json:"usageCurrent"`      // Electricity usage (kWh), current year
	TempPrevious      float64 `json:"tempPrevious"`      // Avg. temperature (F), previous year
	TempCurrent       float64 `json:"tempCurrent"`       // Avg. temperature (F), current year
	DailyCostPrevious float64 `json:"dailyCostPrevious"` // Avg. daily cost ($), previous year
	DailyCostCurrent  float64 `json:"dailyCostCurrent"`  // Avg. daily cost ($), current year
}

// BillData is the canonical extraction result for one uploaded bill.
// Field names and JSON tags mirror the structured-output schema sent to
// the model; the gateway decodes the model's JSON directly into this type.
type BillData struct {
	CustomerName      string  `json:"customerName"`      // Full name of the customer
	CustomerFirstName string  `json:"customerFirstName"` // First name extracted from the full name
	ServiceAddress    string  `json:"serviceAddress"`    // Service address including city, state, zip
	MeterNumber       string  `json:"meterNumber"`       // Meter number listed on the bill
	AccountNumber     string  `json:"accountNumber"`     // Account number
	AmountDue         float64 `json:"amountDue"`         // Total amount due
	DueDate           string  `json:"dueDate"`           // Due date of the bill
	SupplyCharges     float64 `json:"supplyCharges"`     // Total supply charges in dollars
	DeliveryCharges   float64 `json:"deliveryCharges"`   // Total delivery charges in dollars
	EnergyTip         string  `json:"energyTip"`         // The "Want to save?" tip printed on the bill
	PriceToCompare    float64 `json:"priceToCompare"`    // Regulated reference rate per kWh
	BillMonth         string  `json:"billMonth"`         // Current month in the usage summary

	AmountComparisonSentence string `json:"amountComparisonSentence"` // Short sentence comparing this bill to the previous balance
	EnergyTipSentence        string `json:"energyTipSentence"`        // One-sentence friendly summary of the bill's energy tip

	MonthlyComparison MonthlyComparison `json:"monthlyComparison"`

	// Gamification fields. The rank trio is assigned by the model and then
	// re-verified locally against the tier thresholds before use.
	EnergySaverRank    Rank    `json:"energySaverRank"`
	PercentToNextLevel float64 `json:"percentToNextLevel"` // Additional reduction needed for the next tier, 0 at the top
	NextRank           string  `json:"nextRank"`           // Next tier label, empty at G.O.A.T.
	RankDescription    string  `json:"rankDescription"`    // Encouraging narrative for the rank
	RankVisualPrompt   string  `json:"rankVisualPrompt"`   // Prompt consumed by the illustration gateway
}

// Forecast is one day's reduced weather summary, imperial units.
type Forecast struct {
	Date      string  `json:"date"` // UTC calendar date, YYYY-MM-DD
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Condition string  `json:"condition"`
	Humidity  float64 `json:"humidity"`
}

// WeatherData is the 7-day energy-impact panel for a service address.
// It is constructed fresh on every dashboard load and never cached.
// A degraded value has no forecasts and explanatory strings in place of
// the narrative.
type WeatherData struct {
	Forecasts    []Forecast `json:"forecasts"`
	Summary      string     `json:"summary"`
	EnergyImpact string     `json:"energyImpact"`
	Tip          string     `json:"tip"`
}

// RebateOption is the single best-fit offer selected from the rebate
// catalog for one bill. Recomputed per dashboard, never stored.
type RebateOption struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"` // Display string, e.g. "$450" or "Free"
	Description string `json:"description"`
	Reason      string `json:"reason"` // Branch-specific justification sentence
}

// Dashboard is everything derived from one uploaded bill: the extraction
// result plus the locally derived rebate, tip and rank presentation, and
// the results of the three independent follow-up calls (weather, rank
// badge, tip collage). Illustration fields hold a data URI or are empty
// when generation failed.
type Dashboard struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`

	Bill         BillData     `json:"bill"`
	Rebate       RebateOption `json:"rebate"`
	HouseholdTip string       `json:"householdTip"`

	// UsageChangePercent is the year-over-year usage change,
	// negative when usage decreased.
	UsageChangePercent float64 `json:"usageChangePercent"`
	// RankProgressArc is the fixed presentational arc fill for the rank
	// ring: 25/50/75/100 regardless of PercentToNextLevel.
	RankProgressArc float64 `json:"rankProgressArc"`

	Weather      WeatherData `json:"weather"`
	RankImage    string      `json:"rankImage"`
	CollageImage string      `json:"collageImage"`

	GeneratedAt time.Time `json:"generatedAt"`
}

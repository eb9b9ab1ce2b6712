// Package render draws a dashboard in the terminal for the CLI
// commands: the rank card with its progress ring, the bill summary,
// the rebate card, tips and the weather table.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kaipengyu/ppl-small-win/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Faint(true)
	rankStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const ringWidth = 20

// Dashboard renders the full dashboard as styled terminal text.
func Dashboard(dash core.Dashboard) string {
	sections := []string{
		titleStyle.Render(fmt.Sprintf("Energy Dashboard - %s", dash.FileName)),
		rankCard(dash),
		billCard(dash.Bill),
		rebateCard(dash.Rebate),
		tipsCard(dash),
	}
	if weather := Weather(dash.Weather); weather != "" {
		sections = append(sections, weather)
	}
	return strings.Join(sections, "\n") + "\n"
}

func rankCard(dash core.Dashboard) string {
	bill := dash.Bill

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Energy Saver Rank:"), rankStyle.Render(string(bill.EnergySaverRank)))
	fmt.Fprintf(&b, "%s %s\n", progressRing(dash.RankProgressArc), usageChange(dash.UsageChangePercent))
	if bill.NextRank != "" {
		fmt.Fprintf(&b, "%s %.1f%% more reduction to reach %s\n", labelStyle.Render("Next up:"), bill.PercentToNextLevel, bill.NextRank)
	}
	if bill.RankDescription != "" {
		b.WriteString(bill.RankDescription)
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// progressRing draws the fixed presentational arc as a flat bar.
func progressRing(arc float64) string {
	if arc < 0 {
		arc = 0
	}
	if arc > 100 {
		arc = 100
	}
	filled := int(arc / 100 * ringWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", ringWidth-filled) + "]"
}

func usageChange(percent float64) string {
	switch {
	case percent < 0:
		return goodStyle.Render(fmt.Sprintf("%.1f%% usage vs last year", percent))
	case percent > 0:
		return badStyle.Render(fmt.Sprintf("+%.1f%% usage vs last year", percent))
	default:
		return labelStyle.Render("no usage change vs last year")
	}
}

func billCard(bill core.BillData) string {
	mc := bill.MonthlyComparison

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Customer:"), bill.CustomerName)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Address:"), bill.ServiceAddress)
	fmt.Fprintf(&b, "%s $%.2f due %s\n", labelStyle.Render("Amount:"), bill.AmountDue, bill.DueDate)
	if mc.Month != "" {
		fmt.Fprintf(&b, "%s %s: %.0f kWh (%s) vs %.0f kWh (%s)",
			labelStyle.Render("Usage:"), mc.Month,
			mc.UsageCurrent, mc.LabelCurrentYear,
			mc.UsagePrevious, mc.LabelPreviousYear)
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func rebateCard(rebate core.RebateOption) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n", labelStyle.Render("Best rebate:"), rebate.Name, rebate.Amount)
	b.WriteString(rebate.Description)
	if rebate.Reason != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(rebate.Reason))
	}
	return cardStyle.Render(b.String())
}

func tipsCard(dash core.Dashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Household tip:"), dash.HouseholdTip)
	if dash.Bill.EnergyTip != "" {
		fmt.Fprintf(&b, "\n%s %s", labelStyle.Render("From your bill:"), dash.Bill.EnergyTip)
	}
	return cardStyle.Render(b.String())
}

// Weather renders the 7-day panel, or empty when there is no data at
// all (degraded panels still render their explanatory strings).
func Weather(weather core.WeatherData) string {
	if len(weather.Forecasts) == 0 && weather.Summary == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("7-Day Energy Outlook"))
	b.WriteString("\n")
	for _, day := range weather.Forecasts {
		fmt.Fprintf(&b, "%s  %3.0f°/%3.0f°F  %2.0f%% humidity  %s\n",
			day.Date, day.High, day.Low, day.Humidity, day.Condition)
	}
	if weather.Summary != "" {
		b.WriteString(weather.Summary)
		b.WriteString("\n")
	}
	if weather.EnergyImpact != "" {
		b.WriteString(weather.EnergyImpact)
		b.WriteString("\n")
	}
	if weather.Tip != "" {
		b.WriteString(labelStyle.Render(weather.Tip))
		b.WriteString("\n")
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

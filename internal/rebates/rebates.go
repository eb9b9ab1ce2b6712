// Package rebates selects the best-fit rebate offer and a household
// efficiency tip for an analyzed bill. Both functions are pure and total:
// no I/O, always exactly one result, recomputed per dashboard.
package rebates

import (
	"strings"

	"github.com/kaipengyu/ppl-small-win/internal/core"
)

// olderAreaMarkers are coarse address substrings suggestive of an older
// neighborhood, used to pick the older-home tip variant.
var olderAreaMarkers = []string{"street", "ave", "old", "main"}

// BestRebate maps usage, temperature and amount due onto a single catalog
// offer. Rules are evaluated top to bottom and the first match wins; all
// comparisons are strict, so boundary values fall through to later rules.
func BestRebate(bill core.BillData) core.RebateOption {
	usage := bill.MonthlyComparison.UsageCurrent
	temp := bill.MonthlyComparison.TempCurrent
	amountDue := bill.AmountDue

	switch {
	case usage > 1000 && temp > 70:
		// High usage in warm weather points at cooling efficiency.
		return option(AirSourceHeatPumpPremium,
			"Your high energy usage during warm months suggests upgrading to a premium heat pump could significantly reduce cooling costs.")
	case usage > 1000 && temp < 50:
		// High usage in cold weather points at heating efficiency.
		return option(AirSourceHeatPumpPremium,
			"Your high energy usage during cold months suggests a premium heat pump could reduce heating costs while providing efficient cooling in summer.")
	case usage > 800:
		return option(InHomeAuditFull,
			"A comprehensive home energy audit can identify the best opportunities to reduce your energy costs.")
	case amountDue > 150:
		return option(SmartThermostatContractor,
			"A smart thermostat can help optimize your HVAC usage and reduce costs automatically.")
	default:
		return option(VirtualAudit,
			"Start with a free virtual energy assessment to identify personalized savings opportunities.")
	}
}

// HouseholdTip builds a free-text efficiency tip: a base tip chosen by
// usage tier (with an older-area address variant for the top tier) plus
// an optional seasonal sentence. The seasonal boundaries are exclusive:
// exactly 70F or 50F appends nothing.
func HouseholdTip(bill core.BillData) string {
	usage := bill.MonthlyComparison.UsageCurrent
	temp := bill.MonthlyComparison.TempCurrent
	address := strings.ToLower(bill.ServiceAddress)

	var tip string
	switch {
	case usage > 1000:
		if isLikelyOlderArea(address) {
			tip = "Older homes often have less insulation and air leaks. Consider an energy audit to identify where you're losing energy. Air sealing and insulation upgrades can reduce heating and cooling costs by up to 30%."
		} else {
			tip = "Your home may benefit from upgraded insulation and air sealing. These improvements can reduce energy costs year-round by keeping conditioned air inside."
		}
	case usage > 600:
		tip = "For moderate energy usage, focus on sealing drafts around windows and doors. Weatherstripping and caulking are cost-effective ways to improve efficiency."
	default:
		tip = "Your home appears to be relatively energy-efficient. Maintain this by scheduling regular HVAC maintenance and replacing air filters monthly."
	}

	if temp > 70 {
		tip += " During summer, use window coverings to block direct sunlight and reduce cooling needs."
	} else if temp < 50 {
		tip += " During winter, ensure your heating system is properly maintained and consider a programmable thermostat to optimize usage."
	}

	return tip
}

func isLikelyOlderArea(address string) bool {
	for _, marker := range olderAreaMarkers {
		if strings.Contains(address, marker) {
			return true
		}
	}
	return false
}

func option(id, reason string) core.RebateOption {
	offer, _ := Lookup(id)
	return core.RebateOption{
		Name:        offer.Name,
		Amount:      offer.Amount,
		Description: offer.Description,
		Reason:      reason,
	}
}

// Package rank holds the Energy Saver Rank tier math: the usage-reduction
// thresholds the extraction prompt codifies, the percent-to-next-level
// formulas, and the fixed progress-ring arc each tier renders with.
package rank

import "github.com/kaipengyu/ppl-small-win/internal/core"

// ordered lowest to highest
var tiers = []core.Rank{core.RankAmateur, core.RankPro, core.RankAllStar, core.RankGOAT}

// ReductionPercent returns the year-over-year usage reduction as a
// percentage: positive when usage dropped, negative when it rose.
// Returns 0 when the previous usage is not a usable baseline.
func ReductionPercent(usagePrevious, usageCurrent float64) float64 {
	if usagePrevious <= 0 {
		return 0
	}
	return (usagePrevious - usageCurrent) / usagePrevious * 100
}

// TierFor maps a usage reduction percentage onto a tier:
// G.O.A.T. above 20%, All-Star from 10%, Pro from 1%, Amateur otherwise.
func TierFor(reduction float64) core.Rank {
	switch {
	case reduction > 20:
		return core.RankGOAT
	case reduction >= 10:
		return core.RankAllStar
	case reduction >= 1:
		return core.RankPro
	default:
		return core.RankAmateur
	}
}

// PercentToNext returns the additional reduction needed to reach the next
// tier: Amateur needs 1% total, Pro 10%, All-Star 20%, G.O.A.T. nothing.
func PercentToNext(tier core.Rank, reduction float64) float64 {
	var need float64
	switch tier {
	case core.RankAmateur:
		need = 1
		if reduction < 0 {
			reduction = 0
		}
	case core.RankPro:
		need = 10
	case core.RankAllStar:
		need = 20
	default:
		return 0
	}
	remaining := need - reduction
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Next returns the label of the tier above the given one, empty at the top.
func Next(tier core.Rank) string {
	for i, t := range tiers {
		if t == tier && i+1 < len(tiers) {
			return string(tiers[i+1])
		}
	}
	return ""
}

// Valid reports whether the value is one of the four tiers.
func Valid(tier core.Rank) bool {
	for _, t := range tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// ProgressArc is the fixed arc fill for the rank ring. Purely
// presentational and independent of the percent-to-next-level value:
// Amateur 25, Pro 50, All-Star 75, G.O.A.T. 100. Unknown tiers render
// an empty ring.
func ProgressArc(tier core.Rank) float64 {
	switch tier {
	case core.RankAmateur:
		return 25
	case core.RankPro:
		return 50
	case core.RankAllStar:
		return 75
	case core.RankGOAT:
		return 100
	default:
		return 0
	}
}

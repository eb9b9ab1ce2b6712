package billing

import (
	"testing"

	"github.com/kaipengyu/ppl-small-win/internal/core"
)

func TestDecodeBillRejectsMissingRequired(t *testing.T) {
	// No monthlyComparison block.
	raw := []byte(`{"customerName":"A","serviceAddress":"B","amountDue":10,"energySaverRank":"Pro"}`)
	if _, err := DecodeBill(raw); err == nil {
		t.Fatal("expected schema validation failure")
	}
}

func TestDecodeBillRejectsWrongType(t *testing.T) {
	raw := []byte(`{"customerName":"A","serviceAddress":"B","amountDue":"ten","energySaverRank":"Pro","monthlyComparison":{"month":"July","usagePrevious":100,"usageCurrent":90,"tempCurrent":70}}`)
	if _, err := DecodeBill(raw); err == nil {
		t.Fatal("expected schema validation failure for string amountDue")
	}
}

func TestVerifyCorrectsInconsistentRank(t *testing.T) {
	// 12% reduction is All-Star no matter what the model claimed.
	bill := core.BillData{
		MonthlyComparison: core.MonthlyComparison{UsagePrevious: 1000, UsageCurrent: 880},
		EnergySaverRank:   core.RankAmateur,
		PercentToNextLevel: 40,
		NextRank:          "Pro",
	}
	Verify(&bill)

	if bill.EnergySaverRank != core.RankAllStar {
		t.Errorf("rank = %q, want All-Star", bill.EnergySaverRank)
	}
	if bill.PercentToNextLevel != 8 {
		t.Errorf("percentToNextLevel = %v, want 8", bill.PercentToNextLevel)
	}
	if bill.NextRank != "G.O.A.T." {
		t.Errorf("nextRank = %q, want G.O.A.T.", bill.NextRank)
	}
}

func TestVerifyGOATHasNoNextRank(t *testing.T) {
	bill := core.BillData{
		MonthlyComparison: core.MonthlyComparison{UsagePrevious: 1000, UsageCurrent: 700},
	}
	Verify(&bill)

	if bill.EnergySaverRank != core.RankGOAT {
		t.Errorf("rank = %q, want G.O.A.T.", bill.EnergySaverRank)
	}
	if bill.PercentToNextLevel != 0 {
		t.Errorf("percentToNextLevel = %v, want 0", bill.PercentToNextLevel)
	}
	if bill.NextRank != "" {
		t.Errorf("nextRank = %q, want empty", bill.NextRank)
	}
}

func TestVerifyNoBaseline(t *testing.T) {
	bill := core.BillData{
		MonthlyComparison:  core.MonthlyComparison{UsagePrevious: 0, UsageCurrent: 500},
		EnergySaverRank:    "Legend",
		PercentToNextLevel: -3,
	}
	Verify(&bill)

	if bill.EnergySaverRank != core.RankAmateur {
		t.Errorf("rank = %q, want Amateur fallback for unknown tier", bill.EnergySaverRank)
	}
	if bill.PercentToNextLevel != 0 {
		t.Errorf("percentToNextLevel = %v, want clamped to 0", bill.PercentToNextLevel)
	}
	if bill.NextRank != "Pro" {
		t.Errorf("nextRank = %q, want Pro", bill.NextRank)
	}
}

func TestVerifyIncreasedUsageIsAmateur(t *testing.T) {
	bill := core.BillData{
		MonthlyComparison: core.MonthlyComparison{UsagePrevious: 800, UsageCurrent: 900},
	}
	Verify(&bill)

	if bill.EnergySaverRank != core.RankAmateur {
		t.Errorf("rank = %q, want Amateur", bill.EnergySaverRank)
	}
	if bill.PercentToNextLevel < 0 {
		t.Errorf("percentToNextLevel = %v, must not be negative", bill.PercentToNextLevel)
	}
}

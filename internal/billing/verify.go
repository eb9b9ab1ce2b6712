package billing

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/kaipengyu/ppl-small-win/internal/core"
	"github.com/kaipengyu/ppl-small-win/internal/rank"
)

// billSchemaJSON is the local JSON-Schema used to validate the model's
// payload before decoding. The structured-output constraint already asks
// the model for this shape; validating locally keeps a misbehaving model
// from leaking a half-formed bill into the dashboard.
const billSchemaJSON = `{
  "type": "object",
  "properties": {
    "customerName": {"type": "string"},
    "customerFirstName": {"type": "string"},
    "serviceAddress": {"type": "string"},
    "meterNumber": {"type": "string"},
    "accountNumber": {"type": "string"},
    "amountDue": {"type": "number"},
    "dueDate": {"type": "string"},
    "supplyCharges": {"type": "number"},
    "deliveryCharges": {"type": "number"},
    "energyTip": {"type": "string"},
    "priceToCompare": {"type": "number"},
    "billMonth": {"type": "string"},
    "amountComparisonSentence": {"type": "string"},
    "energyTipSentence": {"type": "string"},
    "monthlyComparison": {
      "type": "object",
      "properties": {
        "month": {"type": "string"},
        "labelPreviousYear": {"type": "string"},
        "labelCurrentYear": {"type": "string"},
        "usagePrevious": {"type": "number"},
        "usageCurrent": {"type": "number"},
        "tempPrevious": {"type": "number"},
        "tempCurrent": {"type": "number"},
        "dailyCostPrevious": {"type": "number"},
        "dailyCostCurrent": {"type": "number"}
      },
      "required": ["month", "usagePrevious", "usageCurrent", "tempCurrent"]
    },
    "energySaverRank": {"type": "string"},
    "percentToNextLevel": {"type": "number"},
    "nextRank": {"type": "string"},
    "rankDescription": {"type": "string"},
    "rankVisualPrompt": {"type": "string"}
  },
  "required": ["customerName", "serviceAddress", "amountDue", "monthlyComparison", "energySaverRank"]
}`

var billValidator = jsonschema.MustCompileString("bill.schema.json", billSchemaJSON)

// DecodeBill validates the raw model payload against the local schema,
// decodes it and verifies the rank fields.
func DecodeBill(raw []byte) (core.BillData, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return core.BillData{}, fmt.Errorf("failed to decode extraction JSON: %w", err)
	}
	if err := billValidator.Validate(doc); err != nil {
		return core.BillData{}, fmt.Errorf("extraction payload failed schema validation: %w", err)
	}

	var bill core.BillData
	if err := json.Unmarshal(raw, &bill); err != nil {
		return core.BillData{}, fmt.Errorf("failed to decode bill data: %w", err)
	}

	Verify(&bill)
	return bill, nil
}

// Verify re-derives the rank trio from the usage figures and overwrites
// the model's values where they disagree. The model is asked to follow
// the tier thresholds, but the progress ring and next-rank copy must be
// mutually consistent, so the client does not trust it to.
func Verify(bill *core.BillData) {
	mc := bill.MonthlyComparison
	if mc.UsagePrevious <= 0 {
		// No usable baseline: keep the model's rank if it is a known tier,
		// clamp the rest into agreement with it.
		if !rank.Valid(bill.EnergySaverRank) {
			bill.EnergySaverRank = core.RankAmateur
		}
		if bill.PercentToNextLevel < 0 {
			bill.PercentToNextLevel = 0
		}
		bill.NextRank = rank.Next(bill.EnergySaverRank)
		return
	}

	reduction := rank.ReductionPercent(mc.UsagePrevious, mc.UsageCurrent)
	tier := rank.TierFor(reduction)

	bill.EnergySaverRank = tier
	bill.PercentToNextLevel = rank.PercentToNext(tier, reduction)
	bill.NextRank = rank.Next(tier)
}

package billing

import "google.golang.org/genai"

// billSchema is the structured-output schema sent with every extraction
// request. It enumerates every BillData field with a natural-language
// description so the model fills the exact shape the decoder expects.
func billSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"customerName": {
				Type:        genai.TypeString,
				Description: "Full name of the customer (e.g. NATALIE WESTRING)",
			},
			"customerFirstName": {
				Type:        genai.TypeString,
				Description: "First name of the customer extracted from the full name (e.g. NATALIE)",
			},
			"serviceAddress": {
				Type:        genai.TypeString,
				Description: "Service address including city, state, zip",
			},
			"meterNumber": {
				Type:        genai.TypeString,
				Description: "Meter number listed on the bill",
			},
			"accountNumber": {
				Type:        genai.TypeString,
				Description: "Account number",
			},
			"amountDue": {
				Type:        genai.TypeNumber,
				Description: "Total amount due",
			},
			"dueDate": {
				Type:        genai.TypeString,
				Description: "Due date of the bill",
			},
			"supplyCharges": {
				Type:        genai.TypeNumber,
				Description: "Total supply charges in dollars",
			},
			"deliveryCharges": {
				Type:        genai.TypeNumber,
				Description: "Total delivery charges in dollars",
			},
			"energyTip": {
				Type:        genai.TypeString,
				Description: "The 'Want to save?' energy tip text provided on the bill",
			},
			"priceToCompare": {
				Type:        genai.TypeNumber,
				Description: "The utility's Price to Compare rate per kWh",
			},
			"billMonth": {
				Type:        genai.TypeString,
				Description: "The current month shown in the usage summary/comparison section (e.g. November)",
			},
			"amountComparisonSentence": {
				Type:        genai.TypeString,
				Description: "A short sentence comparing the current bill amount to the previous balance/bill (e.g. 'It is $46 less than last month'). Use 'Previous Balance' from the Billing Summary as last month's amount.",
			},
			"energyTipSentence": {
				Type:        genai.TypeString,
				Description: "A short, friendly sentence summarizing the specific advice in the energy tip found on the bill.",
			},
			"monthlyComparison": {
				Type:        genai.TypeObject,
				Description: "Data from the comparison table showing usage, temp, and cost for two years",
				Properties: map[string]*genai.Schema{
					"month":             {Type: genai.TypeString, Description: "The month name for the comparison (e.g. November)"},
					"labelPreviousYear": {Type: genai.TypeString, Description: "The year label for the previous period column (e.g. 2024)"},
					"labelCurrentYear":  {Type: genai.TypeString, Description: "The year label for the current period column (e.g. 2025)"},
					"usagePrevious":     {Type: genai.TypeNumber, Description: "Electricity Usage (kWh) for the previous year"},
					"usageCurrent":      {Type: genai.TypeNumber, Description: "Electricity Usage (kWh) for the current year"},
					"tempPrevious":      {Type: genai.TypeNumber, Description: "Avg. Temperature for the previous year"},
					"tempCurrent":       {Type: genai.TypeNumber, Description: "Avg. Temperature for the current year"},
					"dailyCostPrevious": {Type: genai.TypeNumber, Description: "Avg. Daily Cost for the previous year"},
					"dailyCostCurrent":  {Type: genai.TypeNumber, Description: "Avg. Daily Cost for the current year"},
				},
				Required: []string{"month", "labelPreviousYear", "labelCurrentYear", "usagePrevious", "usageCurrent", "tempPrevious", "tempCurrent", "dailyCostPrevious", "dailyCostCurrent"},
			},
			"energySaverRank": {
				Type:        genai.TypeString,
				Description: "Energy Saver Rank based SOLELY on usage reduction percentage: 'G.O.A.T.' (>20% usage reduction), 'All-Star' (10-20% usage reduction), 'Pro' (1-10% usage reduction), or 'Amateur' (no reduction or increased usage). Rank is based on usage only, not cost.",
			},
			"percentToNextLevel": {
				Type:        genai.TypeNumber,
				Description: "Additional percentage reduction needed to reach the next rank level. Calculate: If Amateur, need 1% total reduction (so if at 0%, return 1). If Pro, need 10% total reduction (so if at 5%, return 5 more). If All-Star, need 20% total reduction (so if at 12%, return 8 more). If G.O.A.T., return 0.",
			},
			"nextRank": {
				Type:        genai.TypeString,
				Description: "Name of the next rank level: 'Pro' if Amateur, 'All-Star' if Pro, 'G.O.A.T.' if All-Star, empty string if already G.O.A.T.",
			},
			"rankDescription": {
				Type:        genai.TypeString,
				Description: "A warm, encouraging paragraph in Little Wins tone explaining the user's Energy Saver Rank. Should focus on micro-wins, building confidence, and one doable next step. Start with acknowledging what they're doing right, then mention a small win they can take today.",
			},
			"rankVisualPrompt": {
				Type:        genai.TypeString,
				Description: "A prompt to generate a 3D AI cartoon character representing the Energy Saver Rank. The character should be cute, friendly, and colorful. For G.O.A.T.: a cartoon goat character (a cute goat with friendly expression). For All-Star: a cartoon star character (a cute star with eyes and friendly expression). For Pro: a cartoon character representing professionalism (like a cartoon athlete or professional character). For Amateur: a cartoon character representing a beginner (like a cute cartoon seedling or young character ready to learn). The character should be holding or displaying elements related to energy efficiency (like a lightbulb, wind turbine, or energy symbol). Style should be 3D rendered, colorful, cute, and inviting - like a cartoon mascot.",
			},
		},
		Required: []string{
			"customerName", "customerFirstName", "serviceAddress", "meterNumber", "accountNumber",
			"amountDue", "dueDate", "supplyCharges", "deliveryCharges", "energyTip", "priceToCompare",
			"billMonth", "amountComparisonSentence", "energyTipSentence", "monthlyComparison",
			"energySaverRank", "percentToNextLevel", "nextRank", "rankDescription", "rankVisualPrompt",
		},
	}
}

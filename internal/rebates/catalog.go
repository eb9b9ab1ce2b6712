package rebates

// Offer is one rebate program entry from the residential rebates flyer.
type Offer struct {
	Name        string
	Amount      string // display string, e.g. "$450" or "Free"
	Description string
}

// Catalog identifiers. The recommender only references a handful of
// these directly; the rest are served through Lookup for listings.
const (
	InHomeAuditFull             = "in_home_audit_full"
	InHomeAuditPartial          = "in_home_audit_partial"
	VirtualAudit                = "virtual_audit"
	AtticInsulationElectric     = "attic_insulation_electric"
	AtticInsulationNonElectric  = "attic_insulation_non_electric"
	BasementInsulationElectric  = "basement_insulation_electric"
	BasementInsulationNonElec   = "basement_insulation_non_electric"
	AirSealing                  = "air_sealing"
	SmartThermostatSelf         = "smart_thermostat_self"
	SmartThermostatContractor   = "smart_thermostat_contractor"
	HeatPumpWaterHeater         = "heat_pump_water_heater"
	AirSourceHeatPumpStandard   = "air_source_heat_pump_standard"
	AirSourceHeatPumpPremium    = "air_source_heat_pump_premium"
	MiniSplitHeatPump           = "mini_split_heat_pump"
	CentralACStandard           = "central_ac_standard"
	CentralACPremium            = "central_ac_premium"
	EnergyStarRefrigerator      = "energy_star_refrigerator"
	EnergyStarDehumidifier      = "energy_star_dehumidifier"
	EnergyStarRoomAC            = "energy_star_room_ac"
)

// catalog is the fixed residential offer table, loaded once and never
// mutated. Amounts are display strings because several offers are
// percentage-capped or free.
var catalog = map[string]Offer{
	// Home energy assessments
	InHomeAuditFull:    {Name: "In-Home Audit (electric heating and central A/C)", Amount: "$350", Description: "Comprehensive energy assessment for homes with electric heating and central A/C"},
	InHomeAuditPartial: {Name: "In-Home Audit (electric heating or central A/C)", Amount: "$200", Description: "Energy assessment for homes with either electric heating or central A/C"},
	VirtualAudit:       {Name: "Virtual Home Energy Assessment", Amount: "Free", Description: "Free virtual assessment with energy savings kit"},

	// Insulation and air sealing
	AtticInsulationElectric:    {Name: "Attic Insulation (electric heat)", Amount: "$500", Description: "75% of cost up to $500 for homes with electric heat"},
	AtticInsulationNonElectric: {Name: "Attic Insulation (non-electric heat)", Amount: "$200", Description: "75% of cost up to $200 for homes with non-electric heat and central A/C"},
	BasementInsulationElectric: {Name: "Basement Wall Insulation (electric heat)", Amount: "$500", Description: "75% of cost up to $500 for homes with electric heat"},
	BasementInsulationNonElec:  {Name: "Basement Wall Insulation (non-electric heat)", Amount: "$200", Description: "75% of cost up to $200 for homes with non-electric heat and central A/C"},
	AirSealing:                 {Name: "Air Sealing", Amount: "$200", Description: "Based on air infiltration reduction"},

	// Efficient equipment
	SmartThermostatSelf:       {Name: "Smart Thermostat (self-installed)", Amount: "$50", Description: "ENERGY STAR certified smart thermostat"},
	SmartThermostatContractor: {Name: "Smart Thermostat (Trade Ally installed)", Amount: "$100", Description: "ENERGY STAR certified, installed by Trade Ally"},
	HeatPumpWaterHeater:       {Name: "Heat Pump Water Heater", Amount: "$400", Description: "UEF >= 3.3"},
	AirSourceHeatPumpStandard: {Name: "Air-Source Heat Pump (Standard)", Amount: "$350", Description: "SEER2 >= 15.2, EER2 >= 11.7, HSPF2 >= 7.8"},
	AirSourceHeatPumpPremium:  {Name: "Air-Source Heat Pump (Premium)", Amount: "$450", Description: "SEER2 >= 16.3, EER2 >= 12.9, HSPF2 >= 8.2"},
	MiniSplitHeatPump:         {Name: "Mini-Split Heat Pump", Amount: "$400", Description: "Per outdoor unit, SEER2 >= 15.2"},
	CentralACStandard:         {Name: "Central A/C (Standard)", Amount: "$200", Description: "SEER2 >= 15.2, EER2 >= 12"},
	CentralACPremium:          {Name: "Central A/C (Premium)", Amount: "$300", Description: "SEER2 >= 16.3, EER2 >= 12.9"},

	// Appliances
	EnergyStarRefrigerator: {Name: "ENERGY STAR Refrigerator", Amount: "$50", Description: "ENERGY STAR certified refrigerator"},
	EnergyStarDehumidifier: {Name: "ENERGY STAR Dehumidifier", Amount: "$25", Description: "ENERGY STAR certified dehumidifier"},
	EnergyStarRoomAC:       {Name: "ENERGY STAR Room A/C", Amount: "$15", Description: "ENERGY STAR certified room air conditioner"},
}

// Lookup returns the catalog entry for an identifier.
func Lookup(id string) (Offer, bool) {
	offer, ok := catalog[id]
	return offer, ok
}

package model

// MarketSizeResult carries the two derived dollar figures: the value implied
// by the gap between adjacent scenario pairs, priced at the user's CO2 price.
type MarketSizeResult struct {
	// EmissionsRemovalUSD prices the area between Cut Emissions Aggressively
	// and Emissions Removal.
	EmissionsRemovalUSD float64
	// ClimateInterventionsUSD prices the area between Emissions Removal and
	// Climate Interventions.
	ClimateInterventionsUSD float64
}

package market

import (
	"fmt"

	"climate-scenarios/internal/model"
)

// AreaUnit converts integrated degree-years into dollars per $/ton of CO2
// price: one degree-year of avoided warming is treated as a billion tons of
// addressable abatement.
const AreaUnit = 1e9

// TrapezoidIntegral computes the composite trapezoid rule over uniformly
// spaced samples with unit spacing (the year-index axis 0..N-1, matching the
// curve generator's convention).
func TrapezoidIntegral(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(values); i++ {
		sum += (values[i-1] + values[i]) / 2
	}
	return sum
}

// MarketSize prices the area between two series: integral of (upper-lower)
// times priceScale times AreaUnit. Negative area (an inverted scenario
// ordering) is reported as zero, not a negative dollar figure.
func MarketSize(upper, lower model.ScenarioSeries, priceScale float64) (float64, error) {
	if len(upper) == 0 || len(lower) == 0 {
		return 0, fmt.Errorf("market size requires non-empty series")
	}
	if len(upper) != len(lower) {
		return 0, fmt.Errorf("series length mismatch: %d vs %d", len(upper), len(lower))
	}
	gap := make([]float64, len(upper))
	for i := range upper {
		gap[i] = upper[i] - lower[i]
	}
	size := TrapezoidIntegral(gap) * priceScale * AreaUnit
	if size < 0 {
		size = 0
	}
	return size, nil
}

// Compute derives the two dashboard market sizes from a normalized set:
// emissions removal is priced on the Cut Emissions Aggressively vs Emissions
// Removal gap, climate interventions on the Emissions Removal vs Climate
// Interventions gap.
func Compute(set *model.ScenarioSet, co2Price float64) (model.MarketSizeResult, error) {
	removal, err := MarketSize(set.CutEmissionsAggressively, set.EmissionsRemoval, co2Price)
	if err != nil {
		return model.MarketSizeResult{}, fmt.Errorf("emissions removal market: %w", err)
	}
	interventions, err := MarketSize(set.EmissionsRemoval, set.ClimateInterventions, co2Price)
	if err != nil {
		return model.MarketSizeResult{}, fmt.Errorf("climate interventions market: %w", err)
	}
	return model.MarketSizeResult{
		EmissionsRemovalUSD:     removal,
		ClimateInterventionsUSD: interventions,
	}, nil
}

package scenario

import (
	"context"
	"fmt"

	"climate-scenarios/internal/curve"
	"climate-scenarios/internal/model"
	"climate-scenarios/internal/refdata"
)

// DefaultDataset is the reference dataset used when none is configured.
const DefaultDataset = "ssp_pathways"

// scenarioColumns maps each canonical scenario to the published pathway that
// approximates it.
var scenarioColumns = map[model.Scenario]string{
	model.BusinessAsUsual:          "SSP5-8.5",
	model.CutEmissionsAggressively: "SSP2-4.5",
	model.EmissionsRemoval:         "SSP1-2.6",
	model.ClimateInterventions:     "SSP1-1.9",
}

// ReferenceStrategy builds the set from interpolated published pathways,
// rescaled by a simple multiplicative heuristic: a higher carbon price
// suppresses the mitigation scenarios' warming by a fraction proportional to
// price. Interventions additionally get the overlay.
type ReferenceStrategy struct {
	Params Params
}

func (s *ReferenceStrategy) Name() string { return "reference" }

func (s *ReferenceStrategy) Generate(ctx context.Context, p model.ControlParameters) (*model.ScenarioSet, []string, error) {
	_ = ctx
	dataset := s.Params.Str("dataset", DefaultDataset)
	target := s.Params.Num("intervention_target", 1.0)

	series := map[model.Scenario]model.ScenarioSeries{}
	for sc, column := range scenarioColumns {
		loaded, err := refdata.LoadReferenceSeries(dataset, column, model.SeriesLength)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario %s: %w", sc.Label(), err)
		}
		series[sc] = loaded
	}

	// Price suppression factors: untouched baseline, mild for aggressive
	// cuts, strongest for removal-led pathways.
	priceFrac := p.CO2Price / 1000
	series[model.CutEmissionsAggressively] = curve.Rescale(series[model.CutEmissionsAggressively], 1-0.10*priceFrac)
	series[model.EmissionsRemoval] = curve.Rescale(series[model.EmissionsRemoval], 1-0.25*priceFrac)
	series[model.ClimateInterventions] = curve.Rescale(series[model.ClimateInterventions], 1-0.25*priceFrac)

	series[model.ClimateInterventions] = ApplyIntervention(
		series[model.ClimateInterventions],
		series[model.BusinessAsUsual],
		p.InterventionTemp,
		p.InterventionDuration,
		target,
	)

	candidate := make(map[string][]float64, len(series))
	for sc, v := range series {
		candidate[sc.Key()] = v
	}
	return NormalizeSet(candidate, Strict)
}

package model

// ScenarioSet holds exactly one series per canonical scenario. Using a fixed
// struct rather than a map makes "exactly four scenarios" a structural
// guarantee; canonical ordering is recovered via Scenarios().
type ScenarioSet struct {
	BusinessAsUsual          ScenarioSeries `json:"business_as_usual"`
	CutEmissionsAggressively ScenarioSeries `json:"cut_emissions_aggressively"`
	EmissionsRemoval         ScenarioSeries `json:"emissions_removal"`
	ClimateInterventions     ScenarioSeries `json:"climate_interventions"`
}

// Series returns the series for a scenario.
func (set *ScenarioSet) Series(s Scenario) ScenarioSeries {
	switch s {
	case BusinessAsUsual:
		return set.BusinessAsUsual
	case CutEmissionsAggressively:
		return set.CutEmissionsAggressively
	case EmissionsRemoval:
		return set.EmissionsRemoval
	case ClimateInterventions:
		return set.ClimateInterventions
	}
	return nil
}

// SetSeries replaces the series for a scenario.
func (set *ScenarioSet) SetSeries(s Scenario, v ScenarioSeries) {
	switch s {
	case BusinessAsUsual:
		set.BusinessAsUsual = v
	case CutEmissionsAggressively:
		set.CutEmissionsAggressively = v
	case EmissionsRemoval:
		set.EmissionsRemoval = v
	case ClimateInterventions:
		set.ClimateInterventions = v
	}
}

// TerminalValues returns the final-year value per scenario in canonical order.
func (set *ScenarioSet) TerminalValues() [ScenarioCount]float64 {
	var out [ScenarioCount]float64
	for _, s := range Scenarios() {
		out[s.Rank()] = set.Series(s).Last()
	}
	return out
}

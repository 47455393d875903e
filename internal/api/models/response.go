package models

// ScenarioResponse is the response from one generation pass.
type ScenarioResponse struct {
	Status  string          `json:"status"`
	Summary ScenarioSummary `json:"summary"`
	Series  *SeriesPayload  `json:"series,omitempty"`
}

// ScenarioSummary contains the derived figures the dashboard renders.
type ScenarioSummary struct {
	Strategy      string            `json:"strategy"`
	Points        int               `json:"points"`
	Parameters    ParametersPayload `json:"parameters"`
	TerminalTemps TerminalTemps     `json:"terminal_temps"`
	Markets       MarketSizes       `json:"markets"`
	Warnings      []string          `json:"warnings,omitempty"`
}

// TerminalTemps are the final-year warming values per scenario, in degrees
// above pre-industrial.
type TerminalTemps struct {
	BusinessAsUsual          float64 `json:"business_as_usual"`
	CutEmissionsAggressively float64 `json:"cut_emissions_aggressively"`
	EmissionsRemoval         float64 `json:"emissions_removal"`
	ClimateInterventions     float64 `json:"climate_interventions"`
}

// MarketSizes carries the two derived dollar figures, plus billion-dollar
// renderings for display.
type MarketSizes struct {
	EmissionsRemovalUSD          float64 `json:"emissions_removal_usd"`
	ClimateInterventionsUSD      float64 `json:"climate_interventions_usd"`
	EmissionsRemovalBillions     float64 `json:"emissions_removal_billions"`
	ClimateInterventionsBillions float64 `json:"climate_interventions_billions"`
}

// SeriesPayload is the full four-series table, year-indexed.
type SeriesPayload struct {
	Years                    []int     `json:"years"`
	BusinessAsUsual          []float64 `json:"business_as_usual"`
	CutEmissionsAggressively []float64 `json:"cut_emissions_aggressively"`
	EmissionsRemoval         []float64 `json:"emissions_removal"`
	ClimateInterventions     []float64 `json:"climate_interventions"`
}

// MarketResponse is the response to a reprice request.
type MarketResponse struct {
	CO2Price float64     `json:"co2_price"`
	Markets  MarketSizes `json:"markets"`
}

// CompareResponse is the response from a strategy comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string          `json:"name"`
	Summary ScenarioSummary `json:"summary"`
}

// StrategyInfo describes a selectable generation strategy.
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter.
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "float", "int", "string"
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// DatasetInfo describes a reference dataset.
type DatasetInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Columns     []string `json:"columns"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

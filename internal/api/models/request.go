package models

// ScenarioRequest is the body for running one generation pass.
type ScenarioRequest struct {
	// APIKey is the Anthropic key, required only for the "model" strategy.
	// It is passed through from the client; the server holds no key of its own.
	APIKey     string            `json:"api_key,omitempty"`
	Strategy   StrategyConfig    `json:"strategy,omitempty"`
	Parameters ParametersPayload `json:"parameters,omitempty"`
	Options    ScenarioOptions   `json:"options,omitempty"`
}

// StrategyConfig selects a generation strategy and its parameters.
type StrategyConfig struct {
	Name   string         `json:"name,omitempty"` // "curve" (default), "reference", "model"
	Params map[string]any `json:"params,omitempty"`
}

// ParametersPayload carries the four control scalars. Fields are pointers so
// that absence (nil, fall back to the configured default) is distinguishable
// from an explicit zero, which is in range for price, reduction horizon and
// intervention duration.
type ParametersPayload struct {
	CO2Price             *float64 `json:"co2_price,omitempty"`
	YearsToReduce        *int     `json:"years_to_reduce,omitempty"`
	InterventionTemp     *float64 `json:"intervention_temp,omitempty"`
	InterventionDuration *int     `json:"intervention_duration,omitempty"`
}

// ScenarioOptions contains optional generation parameters.
type ScenarioOptions struct {
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
}

// MarketRequest reprices a previously generated set at a new CO2 price
// without regenerating the curves. The client sends the set back; the server
// keeps no state between requests.
type MarketRequest struct {
	// CO2Price is not binding-required: zero is a legal price and simply
	// yields zero-dollar markets.
	CO2Price  float64       `json:"co2_price"`
	Scenarios SeriesPayload `json:"scenarios" binding:"required"`
}

// CompareRequest runs several strategy variations against the same control
// parameters.
type CompareRequest struct {
	APIKey     string              `json:"api_key,omitempty"`
	Parameters ParametersPayload   `json:"parameters,omitempty"`
	Variations []ScenarioVariation `json:"variations" binding:"required"`
}

// ScenarioVariation names one strategy configuration to compare.
type ScenarioVariation struct {
	Name     string         `json:"name" binding:"required"`
	Strategy StrategyConfig `json:"strategy" binding:"required"`
}

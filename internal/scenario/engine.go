package scenario

import (
	"context"
	"fmt"

	"climate-scenarios/internal/market"
	"climate-scenarios/internal/model"
)

// Result is the complete output of one generation pass.
type Result struct {
	Strategy string
	Params   model.ControlParameters
	Set      *model.ScenarioSet
	Markets  model.MarketSizeResult
	Warnings []string
}

// Run executes one full generation pass: validate parameters, generate and
// normalize the set through the strategy, derive the market sizes. A pass
// either completes or fails atomically; no partial result is returned.
func Run(ctx context.Context, strat Strategy, params model.ControlParameters) (*Result, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	set, warnings, err := strat.Generate(ctx, params)
	if err != nil {
		return nil, err
	}

	markets, err := market.Compute(set, params.CO2Price)
	if err != nil {
		return nil, fmt.Errorf("market sizing: %w", err)
	}

	return &Result{
		Strategy: strat.Name(),
		Params:   params,
		Set:      set,
		Markets:  markets,
		Warnings: warnings,
	}, nil
}

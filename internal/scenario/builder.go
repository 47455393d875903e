package scenario

import (
	"fmt"

	"climate-scenarios/internal/llm"
)

// BuildStrategy constructs a strategy by name. The caller is only needed for
// the model strategy; the presentation layer supplies one built from the API
// key that arrived with the request (or from the environment, for the CLI).
func BuildStrategy(name string, params Params, strictness Strictness, caller llm.Caller) (Strategy, error) {
	switch name {
	case "", "curve":
		return &CurveStrategy{Params: params}, nil
	case "reference":
		return &ReferenceStrategy{Params: params}, nil
	case "model":
		if caller == nil {
			return nil, fmt.Errorf("model strategy requires an API key")
		}
		return &ModelStrategy{Caller: caller, Strictness: strictness}, nil
	}
	return nil, fmt.Errorf("unsupported strategy: %q", name)
}

// StrategyNames lists the selectable strategies in presentation order.
func StrategyNames() []string { return []string{"curve", "reference", "model"} }

package scenario

import (
	"context"

	"climate-scenarios/internal/model"
)

// Strategy produces a candidate ScenarioSet from the control parameters.
// Implementations differ in where the numbers come from (closed-form curves,
// reference datasets, or a language model); every strategy's output has
// already been through the normalizer.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, params model.ControlParameters) (*model.ScenarioSet, []string, error)
}

// Params is the loosely-typed parameter bag carried by strategy configs,
// mirroring the config file's strategy.params mapping.
type Params map[string]any

// Num reads a numeric parameter, tolerating the types YAML and JSON decoding
// produce, falling back to def.
func (p Params) Num(key string, def float64) float64 {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	}
	return def
}

// Str reads a string parameter, falling back to def.
func (p Params) Str(key string, def string) string {
	if v, ok := p[key]; ok && v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

package scenario

import (
	"fmt"
	"log"

	"climate-scenarios/internal/curve"
	"climate-scenarios/internal/model"
)

// Policy bounds for warming values: no cooling below the pre-industrial
// baseline, no more than 6°C of warming. Policy, not physical law.
const (
	ClampLow  = 0.0
	ClampHigh = 6.0
)

// Strictness controls how the normalizer handles scenarios it cannot resolve
// from the candidate keys.
type Strictness int

const (
	// Lenient synthesizes a linear fallback series for missing scenarios.
	Lenient Strictness = iota
	// Strict fails the whole pass with MissingScenarioError.
	Strict
)

func ParseStrictness(s string) (Strictness, error) {
	switch s {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	}
	return Lenient, fmt.Errorf("unknown strictness %q (want strict or lenient)", s)
}

// MissingScenarioError reports a canonical scenario that could not be
// resolved from the supplied keys in strict mode.
type MissingScenarioError struct {
	Scenario model.Scenario
}

func (e *MissingScenarioError) Error() string {
	return fmt.Sprintf("no candidate key resolves to scenario %q", e.Scenario.Label())
}

// NormalizeLength forces a series to exactly targetLength samples: shorter
// input is padded by repeating the final element, longer input is truncated.
// No interpolation; this is a deliberate simplification, not smoothing.
func NormalizeLength(s model.ScenarioSeries, targetLength int) model.ScenarioSeries {
	out := make(model.ScenarioSeries, targetLength)
	if len(s) == 0 {
		return out
	}
	for i := 0; i < targetLength; i++ {
		if i < len(s) {
			out[i] = s[i]
		} else {
			out[i] = s[len(s)-1]
		}
	}
	return out
}

// ClampRange clamps every element to [low, high]. Elements already in range
// are unchanged.
func ClampRange(s model.ScenarioSeries, low, high float64) model.ScenarioSeries {
	out := make(model.ScenarioSeries, len(s))
	for i, v := range s {
		switch {
		case v < low:
			out[i] = low
		case v > high:
			out[i] = high
		default:
			out[i] = v
		}
	}
	return out
}

// FallbackSeries is the synthetic linear series substituted for a missing
// scenario in lenient mode: linspace from 0 to 6-rank, so later (more
// mitigated) scenarios still end lower than earlier ones.
func FallbackSeries(s model.Scenario, length int) model.ScenarioSeries {
	return model.Linspace(0, ClampHigh-float64(s.Rank()), length)
}

// EnforceDescendingOrder restores the terminal-value ordering invariant: for
// each adjacent pair in canonical order, if the more-mitigated scenario ends
// at or above the less-mitigated one, it is rescaled by upper.last/lower.last
// so its terminal value drops strictly below. The correction inspects only
// the final index; mid-series crossings are left alone on purpose.
// Idempotent once the invariant holds. Returns one warning per correction.
func EnforceDescendingOrder(set *model.ScenarioSet) []string {
	var warnings []string
	order := model.Scenarios()
	for i := 1; i < len(order); i++ {
		upper := set.Series(order[i-1])
		lower := set.Series(order[i])
		upperLast, lowerLast := upper.Last(), lower.Last()
		if lowerLast < upperLast {
			continue
		}
		w := fmt.Sprintf("degenerate ordering: %s ends at %.3f°C, at or above %s at %.3f°C; rescaled",
			order[i].Label(), lowerLast, order[i-1].Label(), upperLast)
		log.Printf("[normalize] %s", w)
		warnings = append(warnings, w)
		if lowerLast == 0 {
			// Both terminals sit on the lower bound; rescaling cannot
			// separate them, so leave the series alone.
			continue
		}
		// The extra 0.1% keeps the corrected terminal strictly below the
		// upper one; an exact ratio would only reach equality.
		set.SetSeries(order[i], curve.Rescale(lower, upperLast/lowerLast*0.999))
	}
	return warnings
}

// NormalizeSet turns a candidate name-to-series mapping, which may be
// incomplete or mis-keyed when built from unstructured text, into a
// ScenarioSet satisfying the length, bound and terminal-ordering invariants.
func NormalizeSet(candidate map[string][]float64, strictness Strictness) (*model.ScenarioSet, []string, error) {
	resolved := map[model.Scenario]model.ScenarioSeries{}
	for key, vals := range candidate {
		s, ok := model.ResolveScenario(key)
		if !ok {
			continue
		}
		if _, dup := resolved[s]; dup {
			continue
		}
		resolved[s] = model.ScenarioSeries(vals)
	}

	var warnings []string
	set := &model.ScenarioSet{}
	for _, s := range model.Scenarios() {
		series, ok := resolved[s]
		if !ok {
			if strictness == Strict {
				return nil, nil, &MissingScenarioError{Scenario: s}
			}
			w := fmt.Sprintf("scenario %q missing from payload; substituted linear fallback", s.Label())
			log.Printf("[normalize] %s", w)
			warnings = append(warnings, w)
			series = FallbackSeries(s, model.SeriesLength)
		}
		series = NormalizeLength(series, model.SeriesLength)
		series = ClampRange(series, ClampLow, ClampHigh)
		set.SetSeries(s, series)
	}

	warnings = append(warnings, EnforceDescendingOrder(set)...)
	return set, warnings, nil
}

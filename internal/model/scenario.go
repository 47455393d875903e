package model

import "strings"

// Scenario identifies one of the four canonical climate trajectories.
// The numeric order is the canonical order: each later scenario represents
// progressively stronger mitigation and must show equal-or-less warming at
// the terminal year.
type Scenario int

const (
	BusinessAsUsual Scenario = iota
	CutEmissionsAggressively
	EmissionsRemoval
	ClimateInterventions

	ScenarioCount = 4
)

var scenarioLabels = [ScenarioCount]string{
	"Business as Usual",
	"Cut Emissions Aggressively",
	"Emissions Removal",
	"Climate Interventions",
}

// Scenarios returns all scenarios in canonical order.
func Scenarios() [ScenarioCount]Scenario {
	return [ScenarioCount]Scenario{
		BusinessAsUsual,
		CutEmissionsAggressively,
		EmissionsRemoval,
		ClimateInterventions,
	}
}

// Label returns the human-readable canonical name, e.g. "Business as Usual".
func (s Scenario) Label() string {
	if s < 0 || int(s) >= ScenarioCount {
		return "Unknown"
	}
	return scenarioLabels[s]
}

// Key returns the snake_case identifier used in JSON, CSV and config,
// e.g. "business_as_usual".
func (s Scenario) Key() string {
	return strings.ReplaceAll(strings.ToLower(s.Label()), " ", "_")
}

func (s Scenario) String() string { return s.Label() }

// Rank is the scenario's position in canonical order, 0-based.
func (s Scenario) Rank() int { return int(s) }

// minAbbrevLen is the shortest folded key accepted as an abbreviation of a
// canonical label. Shorter fragments ("a", "us") are substrings of several
// labels and would resolve by canonical order rather than by meaning.
const minAbbrevLen = 4

// ResolveScenario maps a free-form label to a canonical scenario.
// Matching is case-insensitive and ignores spaces, underscores and hyphens;
// a candidate matches when it contains the canonical label as a substring,
// or when the label contains the candidate and the candidate is long enough
// to be distinctive (abbreviated keys like "interventions" still resolve).
// Returns ok=false for anything that resolves to none of the four.
func ResolveScenario(key string) (Scenario, bool) {
	k := foldKey(key)
	if k == "" {
		return 0, false
	}
	for _, s := range Scenarios() {
		canon := foldKey(s.Label())
		if strings.Contains(k, canon) {
			return s, true
		}
		if len(k) >= minAbbrevLen && strings.Contains(canon, k) {
			return s, true
		}
	}
	return 0, false
}

func foldKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

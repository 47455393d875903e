package model

// SeriesLength is the canonical number of samples per scenario: one value per
// year over a 100-year horizon, indexed by year offset 0..99.
const SeriesLength = 100

// ScenarioSeries is an ordered sequence of warming values, each a temperature
// offset in degrees above the pre-industrial baseline. Values are finite and
// non-negative; upper bounds are a normalization policy, not a property of
// the type.
type ScenarioSeries []float64

// Last returns the terminal-year value, or 0 for an empty series.
func (s ScenarioSeries) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Clone returns an independent copy.
func (s ScenarioSeries) Clone() ScenarioSeries {
	out := make(ScenarioSeries, len(s))
	copy(out, s)
	return out
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) ScenarioSeries {
	out := make(ScenarioSeries, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	if n > 0 {
		out[n-1] = end
	}
	return out
}

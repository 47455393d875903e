package curve

import (
	"errors"
	"fmt"
	"math"

	"climate-scenarios/internal/model"
)

// Family names a closed-form interpolation shape on the unit interval.
type Family string

const (
	FamilyLinear      Family = "linear"
	FamilyPower       Family = "power"
	FamilyExponential Family = "exponential"
	FamilyLogarithmic Family = "logarithmic"
)

// Shape selects a curve family. Exponent applies only to FamilyPower.
type Shape struct {
	Family   Family
	Exponent float64
}

func Linear() Shape         { return Shape{Family: FamilyLinear} }
func Power(p float64) Shape { return Shape{Family: FamilyPower, Exponent: p} }
func Exponential() Shape    { return Shape{Family: FamilyExponential} }
func Logarithmic() Shape    { return Shape{Family: FamilyLogarithmic} }

// eval maps x in [0,1] to f(x) in [0,1] with f(0)=0, f(1)=1, strictly
// increasing within the interval.
func (s Shape) eval(x float64) (float64, error) {
	switch s.Family {
	case FamilyLinear:
		return x, nil
	case FamilyPower:
		if s.Exponent <= 0 {
			return 0, fmt.Errorf("power shape requires exponent > 0, got %g", s.Exponent)
		}
		return math.Pow(x, s.Exponent), nil
	case FamilyExponential:
		// Saturating rise, normalized to hit 1 at x=1.
		return (1 - math.Exp(-3*x)) / (1 - math.Exp(-3)), nil
	case FamilyLogarithmic:
		return math.Log(1+9*x) / math.Log(10), nil
	default:
		return 0, fmt.Errorf("unknown curve family %q", s.Family)
	}
}

// Monotonic produces length samples y(i) = start + (end-start)*f(i/(length-1)).
// Endpoints are exact; the series is strictly monotonic when start != end.
func Monotonic(start, end float64, length int, shape Shape) (model.ScenarioSeries, error) {
	if length < 2 {
		return nil, errors.New("curve length must be >= 2")
	}
	out := make(model.ScenarioSeries, length)
	for i := 0; i < length; i++ {
		x := float64(i) / float64(length-1)
		f, err := shape.eval(x)
		if err != nil {
			return nil, err
		}
		out[i] = start + (end-start)*f
	}
	// Pin the endpoints against floating drift in the shape evaluation.
	out[0] = start
	out[length-1] = end
	return out, nil
}

// TwoPhase joins two power-law segments at peakIndex: a rising phase from
// start to peak over [0, peakIndex] with exponent riseShape, then a falling
// phase from peak to end over [peakIndex, length-1] with exponent fallShape.
// Both segments evaluate to peak at the join, so the curve is continuous.
// Exponents are typically in [0.5, 2.0]; <1 moves fast early, >1 moves slowly
// early, which is how callers express "rises fast, falls slowly".
func TwoPhase(start, peak, end float64, length, peakIndex int, riseShape, fallShape float64) (model.ScenarioSeries, error) {
	if length < 2 {
		return nil, errors.New("curve length must be >= 2")
	}
	if peakIndex < 1 || peakIndex > length-2 {
		return nil, fmt.Errorf("peak index %d must be in [1, %d]", peakIndex, length-2)
	}
	if riseShape <= 0 || fallShape <= 0 {
		return nil, errors.New("two-phase shape exponents must be > 0")
	}
	out := make(model.ScenarioSeries, length)
	for i := 0; i <= peakIndex; i++ {
		x := float64(i) / float64(peakIndex)
		out[i] = start + (peak-start)*math.Pow(x, riseShape)
	}
	for i := peakIndex; i < length; i++ {
		x := float64(i-peakIndex) / float64(length-1-peakIndex)
		out[i] = peak + (end-peak)*math.Pow(x, fallShape)
	}
	out[0] = start
	out[peakIndex] = peak
	out[length-1] = end
	return out, nil
}

// Rescale multiplies every element by factor, returning a new series.
func Rescale(s model.ScenarioSeries, factor float64) model.ScenarioSeries {
	out := make(model.ScenarioSeries, len(s))
	for i, v := range s {
		out[i] = v * factor
	}
	return out
}

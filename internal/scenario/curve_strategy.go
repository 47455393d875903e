package scenario

import (
	"context"
	"fmt"

	"climate-scenarios/internal/curve"
	"climate-scenarios/internal/model"
)

// CurveStrategy synthesizes the four trajectories from closed-form curve
// families. Baseline values and shapes can be overridden through Params;
// defaults express the usual qualitative story: business-as-usual warming
// accelerates, mitigation scenarios peak near the emissions-reduction horizon
// and decline, interventions are overlaid on the removal trajectory.
type CurveStrategy struct {
	Params Params
}

func (s *CurveStrategy) Name() string { return "curve" }

func (s *CurveStrategy) Generate(ctx context.Context, p model.ControlParameters) (*model.ScenarioSet, []string, error) {
	_ = ctx // purely computational; kept for the Strategy contract
	n := model.SeriesLength

	start := s.Params.Num("start_temp", 1.2)
	bauEnd := s.Params.Num("bau_end", 4.8)
	target := s.Params.Num("intervention_target", 1.0)

	bauShape, err := s.bauShape()
	if err != nil {
		return nil, nil, err
	}
	bau, err := curve.Monotonic(start, bauEnd, n, bauShape)
	if err != nil {
		return nil, nil, fmt.Errorf("business-as-usual curve: %w", err)
	}

	// Peak timing follows the emissions-reduction horizon: the longer it
	// takes to cut emissions, the later and higher the peak.
	peakIndex := clampInt(p.YearsToReduce, 1, n-2)
	cutPeak := 1.6 + 0.012*float64(p.YearsToReduce)
	cut, err := curve.TwoPhase(start, cutPeak, 1.5, n, peakIndex, 0.8, 1.6)
	if err != nil {
		return nil, nil, fmt.Errorf("cut-emissions curve: %w", err)
	}

	// Removal peaks a little lower and ends lower still; a higher carbon
	// price funds more removal and suppresses the terminal value.
	removalPeak := 1.4 + 0.010*float64(p.YearsToReduce)
	removalEnd := 1.1 - 0.5*p.CO2Price/1000
	removalPeakIndex := clampInt(p.YearsToReduce*2/3, 1, n-2)
	removal, err := curve.TwoPhase(start, removalPeak, removalEnd, n, removalPeakIndex, 0.8, 1.4)
	if err != nil {
		return nil, nil, fmt.Errorf("emissions-removal curve: %w", err)
	}

	// Interventions assume the removal program continues and add an active
	// program on top: a slightly suppressed copy of the removal trajectory,
	// blended toward the target once business-as-usual warming crosses the
	// start threshold.
	interventionsBase := curve.Rescale(removal, 0.93)
	interventions := ApplyIntervention(interventionsBase, bau, p.InterventionTemp, p.InterventionDuration, target)

	candidate := map[string][]float64{
		model.BusinessAsUsual.Key():          bau,
		model.CutEmissionsAggressively.Key(): cut,
		model.EmissionsRemoval.Key():         removal,
		model.ClimateInterventions.Key():     interventions,
	}
	return NormalizeSet(candidate, Strict)
}

func (s *CurveStrategy) bauShape() (curve.Shape, error) {
	family := curve.Family(s.Params.Str("bau_shape", string(curve.FamilyPower)))
	switch family {
	case curve.FamilyPower:
		return curve.Power(s.Params.Num("bau_exponent", 1.3)), nil
	case curve.FamilyLinear:
		return curve.Linear(), nil
	case curve.FamilyExponential:
		return curve.Exponential(), nil
	case curve.FamilyLogarithmic:
		return curve.Logarithmic(), nil
	}
	return curve.Shape{}, fmt.Errorf("unknown bau_shape %q", family)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

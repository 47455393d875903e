package scenario

import "climate-scenarios/internal/model"

// ApplyIntervention models a time-bounded corrective push: once the reference
// series crosses thresholdTemp, the series is blended toward targetValue over
// a window of durationYears. The blend weight rises linearly from 0 at the
// window start (reproducing the original value) to 1 at the last index of the
// window, so the adjusted curve is continuous at the left edge and approaches
// the target as the window lengthens. Outside [start, end) the series is
// untouched; a zero duration is a no-op. If the reference never crosses the
// threshold the window starts at index 0.
func ApplyIntervention(series, reference model.ScenarioSeries, thresholdTemp float64, durationYears int, targetValue float64) model.ScenarioSeries {
	out := series.Clone()
	if durationYears <= 0 || len(out) == 0 {
		return out
	}

	startIndex := 0
	for i, v := range reference {
		if v > thresholdTemp {
			startIndex = i
			break
		}
	}
	if startIndex >= len(out) {
		return out
	}

	endIndex := startIndex + durationYears
	if endIndex > len(out) {
		endIndex = len(out)
	}

	span := endIndex - startIndex
	for i := startIndex; i < endIndex; i++ {
		weight := 0.0
		if span > 1 {
			weight = float64(i-startIndex) / float64(span-1)
		}
		out[i] -= weight * (out[i] - targetValue)
	}
	return out
}

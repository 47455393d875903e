package llm

import (
	"fmt"

	"climate-scenarios/internal/model"
)

// BuildPrompt renders the scenario-generation prompt from the four control
// parameters.
func BuildPrompt(p model.ControlParameters) string {
	return fmt.Sprintf(`Generate climate impact scenarios based on the following parameters:
- CO2 price: $%.0f per ton
- Years to reduce emissions by >90%%: %d
- Temperature for climate interventions: %.1f°C above pre-industrial levels
- Duration of climate interventions: %d years

Provide data for four scenarios over %d years:
1. Business as Usual
2. Cut Emissions Aggressively
3. Emissions Removal
4. Climate Interventions

Use credible sources like IPCC reports for baseline data and projections.
Respond with a single JSON object whose keys are the four scenario names and
whose values are arrays of %d yearly warming values in degrees above
pre-industrial levels.`,
		p.CO2Price, p.YearsToReduce, p.InterventionTemp, p.InterventionDuration,
		model.SeriesLength, model.SeriesLength)
}

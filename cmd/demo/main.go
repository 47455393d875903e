package main

import (
	"context"
	"flag"
	"fmt"

	"climate-scenarios/internal/model"
	"climate-scenarios/internal/scenario"
)

// Demo:
// - Run the closed-form curve strategy with the default dashboard parameters
// - Print a few sample years per scenario to show how the pieces fit together
func main() {
	co2Price := flag.Float64("co2-price", 50, "CO2 price $/ton")
	yearsToReduce := flag.Int("years-to-reduce", 30, "Years to cut annual emissions by >90%")
	interventionTemp := flag.Float64("intervention-temp", 1.5, "Temperature at which interventions start")
	interventionDuration := flag.Int("intervention-duration", 20, "Intervention duration in years")
	outCSV := flag.String("out", "", "Optional path to write the scenario CSV")
	flag.Parse()

	params := model.ControlParameters{
		CO2Price:             *co2Price,
		YearsToReduce:        *yearsToReduce,
		InterventionTemp:     *interventionTemp,
		InterventionDuration: *interventionDuration,
	}

	strat := &scenario.CurveStrategy{}
	result, err := scenario.Run(context.Background(), strat, params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Strategy=%s\n\n", result.Strategy)
	fmt.Printf("%-6s", "year")
	for _, s := range model.Scenarios() {
		fmt.Printf("  %-28s", s.Label())
	}
	fmt.Println()
	for _, year := range []int{0, 20, 40, 60, 80, 99} {
		fmt.Printf("%-6d", year)
		for _, s := range model.Scenarios() {
			fmt.Printf("  %-28.2f", result.Set.Series(s)[year])
		}
		fmt.Println()
	}

	fmt.Printf("\nEmissions Removal Market: $%.2f billion\n", result.Markets.EmissionsRemovalUSD/1e9)
	fmt.Printf("Climate Interventions Market: $%.2f billion\n", result.Markets.ClimateInterventionsUSD/1e9)

	if *outCSV != "" {
		if err := scenario.WriteScenarioCSV(*outCSV, result.Set); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}

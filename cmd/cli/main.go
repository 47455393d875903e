package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"climate-scenarios/internal/config"
	"climate-scenarios/internal/llm"
	"climate-scenarios/internal/model"
	"climate-scenarios/internal/refdata"
	"climate-scenarios/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "datasets":
		cmdDatasets()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli generate --config config.yaml --out scenarios.csv")
	fmt.Println("  cli generate --strategy reference --co2-price 80")
	fmt.Println("  cli datasets")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - generate prints terminal warming per scenario and the two market sizes")
	fmt.Println("  - the model strategy reads ANTHROPIC_API_KEY from the environment")
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	stratName := fs.String("strategy", "", "Strategy: curve, reference or model (overrides config)")
	dataset := fs.String("dataset", "", "Reference dataset key (reference strategy)")
	outPath := fs.String("out", "", "Optional output CSV path")
	co2Price := fs.Float64("co2-price", 0, "CO2 price $/ton (0 = config/default)")
	yearsToReduce := fs.Int("years-to-reduce", 0, "Years to cut emissions >90% (0 = config/default)")
	interventionTemp := fs.Float64("intervention-temp", 0, "Intervention start temperature °C (0 = config/default)")
	interventionDuration := fs.Int("intervention-duration", 0, "Intervention duration in years (0 = config/default)")
	repriceAt := fs.Float64("reprice-at", 0, "Optionally reprice the cached set at a second CO2 price")
	_ = fs.Parse(args)

	cfg := &config.Config{}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	} else {
		cfg.Parameters = config.FromModelParams(model.DefaultControlParameters())
		cfg.Strategy.Name = "curve"
	}

	overrides := config.ParametersConfig{
		CO2Price:             *co2Price,
		YearsToReduce:        *yearsToReduce,
		InterventionTemp:     *interventionTemp,
		InterventionDuration: *interventionDuration,
	}
	params := config.MergeParameters(cfg.Parameters, overrides).ToModelParams()

	name := cfg.Strategy.Name
	if *stratName != "" {
		name = *stratName
	}
	strategyParams := scenario.Params(cfg.Strategy.Params)
	if *dataset != "" {
		if strategyParams == nil {
			strategyParams = scenario.Params{}
		}
		strategyParams["dataset"] = *dataset
	}

	strictness, err := scenario.ParseStrictness(cfg.Normalizer.Strictness)
	if err != nil {
		fatal(err)
	}

	var caller llm.Caller
	if name == "model" {
		ac, err := llm.NewAnthropicCallerFromEnv()
		if err != nil {
			fatal(err)
		}
		caller = ac
	}

	strat, err := scenario.BuildStrategy(name, strategyParams, strictness, caller)
	if err != nil {
		fatal(err)
	}

	result, err := scenario.Run(context.Background(), strat, params)
	if err != nil {
		fatal(err)
	}

	session := &scenario.Session{}
	session.Store(result)

	fmt.Printf("Strategy=%s  CO2 price=$%.0f/ton\n\n", result.Strategy, params.CO2Price)
	fmt.Println("Terminal warming (year 99, °C above pre-industrial):")
	for _, s := range model.Scenarios() {
		fmt.Printf("  %-28s %.2f\n", s.Label(), result.Set.Series(s).Last())
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	fmt.Println("\nEstimated market sizes:")
	fmt.Printf("  Emissions Removal:      $%.2f billion\n", result.Markets.EmissionsRemovalUSD/1e9)
	fmt.Printf("  Climate Interventions:  $%.2f billion\n", result.Markets.ClimateInterventionsUSD/1e9)

	if *repriceAt > 0 {
		repriced, err := session.Reprice(*repriceAt)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("\nAt $%.0f/ton (same curves):\n", *repriceAt)
		fmt.Printf("  Emissions Removal:      $%.2f billion\n", repriced.EmissionsRemovalUSD/1e9)
		fmt.Printf("  Climate Interventions:  $%.2f billion\n", repriced.ClimateInterventionsUSD/1e9)
	}

	if *outPath != "" {
		if err := scenario.WriteScenarioCSV(*outPath, result.Set); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outPath)
	}
}

func cmdDatasets() {
	for _, d := range refdata.Datasets() {
		fmt.Printf("%s - %s\n", d.Key, d.Name)
		fmt.Printf("  %s\n", d.Description)
		for _, col := range d.ColumnNames() {
			fmt.Printf("  - %s\n", col)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

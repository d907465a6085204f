package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"school-strategy-lab/internal/config"
	"school-strategy-lab/internal/domain"
	"school-strategy-lab/internal/report"
	"school-strategy-lab/internal/scenario"
	"school-strategy-lab/internal/valuation"
)

// The scenario grid is input data for the engine, not part of it: these are
// the ten board scenarios layered over the calibrated base case.
var grid = []scenario.Definition{
	{
		Name: "Base case",
	},
	{
		Name: "Mild demand downside",
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyRetain:    {DemandMultStd: f(0.90), DemandMultWkd: f(0.90)},
			domain.StrategyFranchise: {DemandMultStd: f(0.90), DemandMultWkd: f(0.90)},
		},
	},
	{
		Name: "Mild demand upside",
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyRetain:    {DemandMultStd: f(1.10), DemandMultWkd: f(1.10)},
			domain.StrategyFranchise: {DemandMultStd: f(1.10), DemandMultWkd: f(1.10)},
		},
	},
	{
		Name:   "Cost inflation shock",
		Global: scenario.GlobalOverride{OtherOperatingRateShift: +0.06},
	},
	{
		Name:   "Lean staffing, low morale",
		Global: scenario.GlobalOverride{OtherOperatingRateShift: -0.04},
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyRetain:    {AdminScore: f(6.0)},
			domain.StrategyFranchise: {AdminScore: f(5.0)},
		},
	},
	{
		Name:   "Retain quality focus",
		Global: scenario.GlobalOverride{OtherOperatingRateShift: +0.02},
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyRetain: {ReputationScore: f(8.5), BrandScore: f(8.0)},
		},
	},
	{
		Name: "Better franchise deal",
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyFranchise: {RoyaltyRate: f(0.04), ReputationScore: f(9.0)},
		},
	},
	{
		Name: "Worse franchise deal",
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyFranchise: {RoyaltyRate: f(0.06)},
		},
	},
	{
		Name:   "Aggressive franchise growth",
		Global: scenario.GlobalOverride{OtherOperatingRateShift: +0.03},
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategyFranchise: {
				DemandMultStd:   f(1.15),
				DemandMultWkd:   f(1.15),
				ReputationScore: f(9.0),
				BrandScore:      f(7.5),
			},
		},
	},
	{
		Name: "Attractive exit market",
		Strategies: map[string]scenario.StrategyOverride{
			domain.StrategySell: {LiquidationValue: f(1_440_000)},
		},
	},
}

func main() {
	configPath := flag.String("config", "", "Base parameter file (YAML); empty uses the built-in base case")
	seed := flag.Uint64("seed", valuation.DefaultSeed, "Random seed shared by every scenario run")
	trials := flag.Int("trials", 0, "Override the number of Monte Carlo trials (0 keeps the configured value)")

	flag.Parse()

	logger := log.New(os.Stderr, "[scenarios] ", log.LstdFlags)

	base := config.BaseCase()
	if *configPath != "" {
		var err error
		base, err = config.Load(*configPath)
		if err != nil {
			logger.Fatalf("Failed to load parameters: %v", err)
		}
	}
	if *trials > 0 {
		base.Global.Trials = *trials
	}

	order := []string{domain.StrategyRetain, domain.StrategyFranchise, domain.StrategySell}

	for _, def := range grid {
		params, err := scenario.Apply(base, def)
		if err != nil {
			logger.Fatalf("Scenario %q: %v", def.Name, err)
		}

		valuator, err := valuation.NewValuator(params)
		if err != nil {
			logger.Fatalf("Scenario %q: %v", def.Name, err)
		}

		res, err := valuator.RunPortfolio(order, valuation.PortfolioOptions{Seed: *seed})
		if err != nil {
			logger.Fatalf("Scenario %q: %v", def.Name, err)
		}

		fmt.Printf("## Scenario: %s\n\n", def.Name)
		fmt.Print(report.RenderSummary(res))
	}
}

func f(v float64) *float64 { return &v }

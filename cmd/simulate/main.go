package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"school-strategy-lab/internal/config"
	"school-strategy-lab/internal/domain"
	"school-strategy-lab/internal/report"
	"school-strategy-lab/internal/valuation"
)

func main() {
	configPath := flag.String("config", "", "Parameter file (YAML); empty uses the built-in base case")
	seed := flag.Uint64("seed", valuation.DefaultSeed, "Random seed for the shared stream")
	trials := flag.Int("trials", 0, "Override the number of Monte Carlo trials (0 keeps the configured value)")
	baseline := flag.String("baseline", domain.StrategySell, "Baseline strategy for dominance probability")
	strategies := flag.String("strategies", "", "Comma-separated run order; empty runs RETAIN,FRANCHISE,SELL")
	outputJSON := flag.Bool("json", false, "Output summaries as JSON instead of Markdown")

	flag.Parse()

	logger := log.New(os.Stderr, "[simulate] ", log.LstdFlags)

	params, err := loadParams(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load parameters: %v", err)
	}
	if *trials > 0 {
		params.Global.Trials = *trials
	}

	order := []string{domain.StrategyRetain, domain.StrategyFranchise, domain.StrategySell}
	if *strategies != "" {
		order = strings.Split(*strategies, ",")
		for i := range order {
			order[i] = strings.ToUpper(strings.TrimSpace(order[i]))
		}
	}

	valuator, err := valuation.NewValuator(params)
	if err != nil {
		logger.Fatalf("Invalid parameters: %v", err)
	}

	logger.Printf("Running %d trials over %d years for %d strategies (seed=%d, baseline=%s)",
		params.Global.Trials, params.Global.HorizonYears, len(order), *seed, *baseline)

	res, err := valuator.RunPortfolio(order, valuation.PortfolioOptions{
		Baseline: *baseline,
		Seed:     *seed,
	})
	if err != nil {
		logger.Fatalf("Portfolio run failed: %v", err)
	}

	if *outputJSON {
		data, err := json.MarshalIndent(res.Summaries, "", "  ")
		if err != nil {
			logger.Fatalf("Failed to marshal summaries: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(report.RenderSummary(res))
}

func loadParams(path string) (*config.Params, error) {
	if path == "" {
		return config.BaseCase(), nil
	}
	return config.Load(path)
}

package main

import (
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
	strategy := flag.String("strategy", domain.StrategyRetain, "Operating strategy to analyze")

	flag.Parse()

	logger := log.New(os.Stderr, "[statusquo] ", log.LstdFlags)

	params := config.BaseCase()
	if *configPath != "" {
		var err error
		params, err = config.Load(*configPath)
		if err != nil {
			logger.Fatalf("Failed to load parameters: %v", err)
		}
	}

	valuator, err := valuation.NewValuator(params)
	if err != nil {
		logger.Fatalf("Invalid parameters: %v", err)
	}

	name := strings.ToUpper(strings.TrimSpace(*strategy))
	res, err := valuator.StatusQuo(name)
	if err != nil {
		logger.Fatalf("Status quo failed: %v", err)
	}

	fmt.Print(report.RenderStatusQuo(res))
}

package domain

// StrategyResult holds the full per-trial distributions for one strategy.
type StrategyResult struct {
	Strategy string
	NPV      []float64 // economic NPV per trial
	NEV      []float64 // NPV + monetized intangible total per trial
}

// StrategySummary is one row of the cross-strategy risk table.
type StrategySummary struct {
	Strategy        string
	ExpectedUtility float64 // mean of the NEV distribution
	VaR5            float64 // 5th percentile of NEV
	CVaR5           float64 // mean of NEV values <= VaR5; NaN on an empty tail
	PBeatsBaseline  float64 // paired P(NEV > baseline NEV); NaN for the baseline
}

// PortfolioResult is the output of one portfolio aggregation run.
type PortfolioResult struct {
	Baseline  string
	Results   map[string]*StrategyResult
	Summaries []StrategySummary // one row per strategy, in run order
}

// StatusQuoResult is the deterministic diagnostic variant: demand pinned to
// the global historical means, one path, full per-year vectors for reporting.
type StatusQuoResult struct {
	Strategy  string
	NPV       float64
	NEV       float64
	Revenue   []float64 // per-year revenue
	TotalCost []float64 // per-year operating cost + debt service (+ renovation in year 1)
	Cashflow  []float64 // per-year net cashflow
}

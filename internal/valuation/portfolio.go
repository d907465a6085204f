package valuation

import (
	"fmt"
	"math/rand/v2"

	"school-strategy-lab/internal/domain"
)

// DefaultSeed is the historical seed of the model's published runs.
const DefaultSeed uint64 = 123

// PortfolioOptions configures one portfolio aggregation run.
type PortfolioOptions struct {
	// Baseline is the strategy dominance is measured against.
	// Empty selects domain.StrategySell.
	Baseline string

	// Seed for the shared random stream. The stream is seeded once and
	// consumed sequentially across strategies in run order.
	Seed uint64
}

// RunPortfolio values every named strategy under one shared random stream and
// computes the cross-strategy summary table. Strategies are processed in the
// given order; later strategies continue the stream, they never restart it,
// so a fixed seed yields an identical table on every run.
func (v *Valuator) RunPortfolio(order []string, opts PortfolioOptions) (*domain.PortfolioResult, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("portfolio: no strategies given")
	}
	baseline := opts.Baseline
	if baseline == "" {
		baseline = domain.StrategySell
	}

	src := rand.NewPCG(opts.Seed, opts.Seed)

	results := make(map[string]*domain.StrategyResult, len(order))
	for _, name := range order {
		res, err := v.Simulate(name, src)
		if err != nil {
			return nil, err
		}
		results[name] = res
	}

	base, ok := results[baseline]
	if !ok {
		return nil, fmt.Errorf("portfolio baseline: %w: %q", ErrUnknownStrategy, baseline)
	}

	summaries := make([]domain.StrategySummary, 0, len(order))
	for _, name := range order {
		nev := results[name].NEV

		baseNEV := base.NEV
		if name == baseline {
			baseNEV = nil // dominance against itself is undefined
		}
		eu, var5, cvar5, pBeats := summarize(nev, baseNEV)

		summaries = append(summaries, domain.StrategySummary{
			Strategy:        name,
			ExpectedUtility: eu,
			VaR5:            var5,
			CVaR5:           cvar5,
			PBeatsBaseline:  pBeats,
		})
	}

	return &domain.PortfolioResult{
		Baseline:  baseline,
		Results:   results,
		Summaries: summaries,
	}, nil
}

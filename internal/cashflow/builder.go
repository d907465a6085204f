package cashflow

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"school-strategy-lab/internal/demand"
	"school-strategy-lab/internal/domain"
)

// Revenue computes trials x years revenue:
// priceStd*standardDemand + priceWkd*weekendDemand, with strategy price
// overrides falling back to the global base prices.
func Revenue(paths *demand.Paths, g *domain.GlobalParams, p *domain.StrategyParams) *mat.Dense {
	var rev, wkd mat.Dense
	rev.Scale(p.PriceStd(g), paths.Standard)
	wkd.Scale(p.PriceWkd(g), paths.Weekend)
	rev.Add(&rev, &wkd)
	return &rev
}

// DebtSchedule returns the per-year debt service vector: the fixed annual
// payment for the first min(T, DebtYears) years, zero thereafter. Identical
// across all trials.
func DebtSchedule(g *domain.GlobalParams) []float64 {
	sched := make([]float64, g.HorizonYears)
	years := min(g.HorizonYears, g.DebtYears)
	for i := 0; i < years; i++ {
		sched[i] = g.DebtPayment
	}
	return sched
}

// Build converts demand paths into a trials x years net cashflow matrix:
//
//	net = revenue - ((royalty + otherOperatingRate) * revenue + debt)
//
// The Franchise kind additionally pays the one-off renovation cost in year 1.
// The Sell kind never reaches this component.
func Build(paths *demand.Paths, g *domain.GlobalParams, p *domain.StrategyParams) (*mat.Dense, error) {
	if p.Kind == domain.KindSell {
		return nil, fmt.Errorf("cashflow: sell strategy has no operating cashflows")
	}
	if g.OtherOperatingRate == nil {
		return nil, fmt.Errorf("cashflow: other_operating_rate is not calibrated")
	}

	rev := Revenue(paths, g, p)
	n, _ := rev.Dims()

	// total = opRate*revenue + debt (+ renovation in year 1), then
	// net = revenue - total. The deterministic status-quo variant applies
	// the same operations in the same order, keeping both paths
	// bit-identical for equal inputs.
	opRate := p.Royalty(g) + *g.OtherOperatingRate
	var total mat.Dense
	total.Scale(opRate, rev)

	for j, d := range DebtSchedule(g) {
		if d == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			total.Set(i, j, total.At(i, j)+d)
		}
	}

	if p.Kind == domain.KindFranchise {
		for i := 0; i < n; i++ {
			total.Set(i, 0, total.At(i, 0)+g.RenovationCost)
		}
	}

	var cf mat.Dense
	cf.Sub(rev, &total)
	return &cf, nil
}

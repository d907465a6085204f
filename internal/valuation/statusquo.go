package valuation

import (
	"fmt"

	"school-strategy-lab/internal/cashflow"
	"school-strategy-lab/internal/demand"
	"school-strategy-lab/internal/domain"
	"school-strategy-lab/internal/intangible"
)

// StatusQuo runs the deterministic diagnostic variant: a single path whose
// demand equals the global historical means exactly, through the same
// cashflow and discounting formulas as the stochastic path. Not defined for
// the Sell kind, which has no operating cashflows to inspect.
func (v *Valuator) StatusQuo(name string) (*domain.StatusQuoResult, error) {
	s, err := v.Strategy(name)
	if err != nil {
		return nil, err
	}
	if s.Kind == domain.KindSell {
		return nil, fmt.Errorf("strategy %s: status quo is not defined for a sell strategy", name)
	}
	if v.global.OtherOperatingRate == nil {
		return nil, fmt.Errorf("strategy %s: other_operating_rate is not calibrated", name)
	}

	paths := demand.Means(&v.global)
	t := v.global.HorizonYears

	revRow := cashflow.Revenue(paths, &v.global, s).RawRowView(0)
	revenue := make([]float64, t)
	copy(revenue, revRow)

	opRate := s.Royalty(&v.global) + *v.global.OtherOperatingRate
	debt := cashflow.DebtSchedule(&v.global)

	totalCost := make([]float64, t)
	cf := make([]float64, t)
	for j := 0; j < t; j++ {
		totalCost[j] = opRate*revenue[j] + debt[j]
		if j == 0 && s.Kind == domain.KindFranchise {
			totalCost[j] += v.global.RenovationCost
		}
		cf[j] = revenue[j] - totalCost[j]
	}

	npv, err := cashflow.NPVSeries(cf, v.global.DiscountRate)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", name, err)
	}

	return &domain.StatusQuoResult{
		Strategy:  name,
		NPV:       npv,
		NEV:       npv + intangible.Value(&v.global, s).Total,
		Revenue:   revenue,
		TotalCost: totalCost,
		Cashflow:  cf,
	}, nil
}

package scenario

import (
	"fmt"

	"school-strategy-lab/internal/config"
)

// GlobalOverride is a sparse patch over the global parameters. Every pointer
// field is an absolute replacement; OtherOperatingRateShift is the one
// delta-valued key: it applies against the calibrated base rate, so a zero
// shift is a null override.
type GlobalOverride struct {
	OtherOperatingRateShift float64

	HorizonYears   *int
	Trials         *int
	DiscountRate   *float64
	DebtPayment    *float64
	DebtYears      *int
	RenovationCost *float64

	AlphaMoral      *float64
	AlphaReputation *float64
	AlphaAcademic   *float64
}

// StrategyOverride is a sparse patch over one strategy's parameters.
// All fields are absolute replacements.
type StrategyOverride struct {
	PriceWeek        *float64
	PriceWeekend     *float64
	RoyaltyRate      *float64
	DemandMultStd    *float64
	DemandMultWkd    *float64
	AdminScore       *float64
	PrestigeScore    *float64
	ReputationScore  *float64
	BrandScore       *float64
	LiquidationValue *float64
}

// Definition names one scenario: a global patch plus per-strategy patches.
type Definition struct {
	Name       string
	Global     GlobalOverride
	Strategies map[string]StrategyOverride
}

// Apply returns a deep copy of base with the scenario patch applied.
// The base is never mutated; applying an empty Definition reproduces the
// base case exactly.
func Apply(base *config.Params, def Definition) (*config.Params, error) {
	out := base.Clone()

	g := &out.Global
	// The shift key reads the calibrated base even when zero, so an
	// uncalibrated parameter set fails here rather than mid-run.
	if base.Global.OtherOperatingRate == nil {
		return nil, fmt.Errorf("scenario %q: other_operating_rate is not calibrated", def.Name)
	}
	shifted := *base.Global.OtherOperatingRate + def.Global.OtherOperatingRateShift
	g.OtherOperatingRate = &shifted

	if def.Global.HorizonYears != nil {
		g.HorizonYears = *def.Global.HorizonYears
	}
	if def.Global.Trials != nil {
		g.Trials = *def.Global.Trials
	}
	if def.Global.DiscountRate != nil {
		g.DiscountRate = *def.Global.DiscountRate
	}
	if def.Global.DebtPayment != nil {
		g.DebtPayment = *def.Global.DebtPayment
	}
	if def.Global.DebtYears != nil {
		g.DebtYears = *def.Global.DebtYears
	}
	if def.Global.RenovationCost != nil {
		g.RenovationCost = *def.Global.RenovationCost
	}
	if def.Global.AlphaMoral != nil {
		g.AlphaMoral = *def.Global.AlphaMoral
	}
	if def.Global.AlphaReputation != nil {
		g.AlphaReputation = *def.Global.AlphaReputation
	}
	if def.Global.AlphaAcademic != nil {
		g.AlphaAcademic = *def.Global.AlphaAcademic
	}

	for name, upd := range def.Strategies {
		s, ok := out.Strategies[name]
		if !ok {
			return nil, fmt.Errorf("scenario %q: unknown strategy %q", def.Name, name)
		}
		if upd.PriceWeek != nil {
			s.PriceWeek = clone(upd.PriceWeek)
		}
		if upd.PriceWeekend != nil {
			s.PriceWeekend = clone(upd.PriceWeekend)
		}
		if upd.RoyaltyRate != nil {
			s.RoyaltyRate = clone(upd.RoyaltyRate)
		}
		if upd.DemandMultStd != nil {
			s.DemandMultStd = clone(upd.DemandMultStd)
		}
		if upd.DemandMultWkd != nil {
			s.DemandMultWkd = clone(upd.DemandMultWkd)
		}
		if upd.AdminScore != nil {
			s.AdminScore = *upd.AdminScore
		}
		if upd.PrestigeScore != nil {
			s.PrestigeScore = *upd.PrestigeScore
		}
		if upd.ReputationScore != nil {
			s.ReputationScore = *upd.ReputationScore
		}
		if upd.BrandScore != nil {
			s.BrandScore = *upd.BrandScore
		}
		if upd.LiquidationValue != nil {
			s.LiquidationValue = clone(upd.LiquidationValue)
		}
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", def.Name, err)
	}
	return out, nil
}

func clone(v *float64) *float64 {
	c := *v
	return &c
}

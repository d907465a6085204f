package domain

import "fmt"

// StrategyKind tags the closed set of strategy variants.
// Each kind carries only the parameter fields relevant to its computation:
// Sell strategies have no demand or pricing parameters, and only the
// Franchise kind incurs the one-off renovation cost.
type StrategyKind string

// Strategy kind constants
const (
	KindRetain    StrategyKind = "RETAIN"    // keep operating under the current brand
	KindFranchise StrategyKind = "FRANCHISE" // convert to the franchise brand
	KindSell      StrategyKind = "SELL"      // liquidate the business and premises
)

// Default strategy names for the validated three-strategy shape.
const (
	StrategyRetain    = "RETAIN"
	StrategyFranchise = "FRANCHISE"
	StrategySell      = "SELL"
)

// GlobalParams holds per-run global economic assumptions.
// Immutable once a run starts; shared read-only across runs.
type GlobalParams struct {
	HorizonYears int     // projection horizon T in years
	Trials       int     // number of Monte Carlo trials N
	DiscountRate float64 // discount rate K

	// EUR equivalents for a full 0->10 intangible score
	AlphaMoral      float64
	AlphaReputation float64
	AlphaAcademic   float64

	DebtPayment float64 // annual debt service
	DebtYears   int     // years with debt outstanding

	// Demand distribution parameters: standard weekly channel and
	// weekend channel, each Normal(mean, std) before strategy scaling.
	StdMean float64
	StdStd  float64
	WkdMean float64
	WkdStd  float64

	// Base prices used when a strategy does not override them.
	PriceStdBase float64
	PriceWkdBase float64

	// Base royalty rate used when a strategy does not override it.
	RoyaltyRateBase float64

	// OtherOperatingRate is calibrated externally against historical
	// operating data before any scenario is applied. It is a required
	// precondition: nil means the calibration step never ran.
	OtherOperatingRate *float64

	// One-off renovation cost charged to the Franchise strategy in year 1.
	RenovationCost float64
}

// StrategyParams holds per-strategy economic and intangible assumptions.
// Pointer-valued fields are optional overrides with documented fallbacks.
type StrategyParams struct {
	Kind StrategyKind

	// Pricing overrides; nil falls back to GlobalParams.PriceStdBase /
	// PriceWkdBase.
	PriceWeek    *float64
	PriceWeekend *float64

	// Royalty override; nil falls back to GlobalParams.RoyaltyRateBase.
	RoyaltyRate *float64

	// Demand multipliers applied to the global mean demand (not the std).
	// nil falls back to 1.0.
	DemandMultStd *float64
	DemandMultWkd *float64

	// Intangible base scores, each in [0,10].
	AdminScore      float64
	PrestigeScore   float64
	ReputationScore float64
	BrandScore      float64

	// Blending weights for the intangible scoring graph.
	// Fallbacks: WAdminMoral 0.6, BetaPrestigeRep 0.4, BetaBrandRep 0.5.
	WAdminMoral     *float64
	BetaPrestigeRep *float64
	BetaBrandRep    *float64

	// Expected liquidation value; required for (and only meaningful on)
	// the Sell kind.
	LiquidationValue *float64
}

// Blending weight fallbacks
const (
	DefaultWAdminMoral     = 0.6
	DefaultBetaPrestigeRep = 0.4
	DefaultBetaBrandRep    = 0.5
)

// Validate checks the global parameter invariants.
func (g *GlobalParams) Validate() error {
	if g.HorizonYears < 1 {
		return fmt.Errorf("horizon_years must be >= 1, got %d", g.HorizonYears)
	}
	if g.Trials < 1 {
		return fmt.Errorf("trials must be >= 1, got %d", g.Trials)
	}
	if g.DiscountRate <= -1 {
		return fmt.Errorf("discount_rate must be > -1, got %g", g.DiscountRate)
	}
	if g.StdStd < 0 || g.WkdStd < 0 {
		return fmt.Errorf("demand stds must be >= 0, got std=%g wkd=%g", g.StdStd, g.WkdStd)
	}
	if g.DebtYears < 0 {
		return fmt.Errorf("debt_years must be >= 0, got %d", g.DebtYears)
	}
	if g.OtherOperatingRate == nil {
		return fmt.Errorf("other_operating_rate is not calibrated: run calibration before building parameters")
	}
	return nil
}

// Validate checks the per-strategy parameter invariants.
func (p *StrategyParams) Validate() error {
	switch p.Kind {
	case KindRetain, KindFranchise, KindSell:
	default:
		return fmt.Errorf("unknown strategy kind %q", p.Kind)
	}
	if p.Kind == KindSell && p.LiquidationValue == nil {
		return fmt.Errorf("sell strategy requires liquidation_value")
	}
	if m := p.StdMultiplier(); m < 0 {
		return fmt.Errorf("demand_mult_std must be >= 0, got %g", m)
	}
	if m := p.WkdMultiplier(); m < 0 {
		return fmt.Errorf("demand_mult_wkd must be >= 0, got %g", m)
	}
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"admin_score", p.AdminScore},
		{"prestige_score", p.PrestigeScore},
		{"reputation_score", p.ReputationScore},
		{"brand_score", p.BrandScore},
	} {
		if s.v < 0 || s.v > 10 {
			return fmt.Errorf("%s must be in [0,10], got %g", s.name, s.v)
		}
	}
	return nil
}

// StdMultiplier returns the standard-channel demand multiplier (fallback 1.0).
func (p *StrategyParams) StdMultiplier() float64 {
	if p.DemandMultStd == nil {
		return 1.0
	}
	return *p.DemandMultStd
}

// WkdMultiplier returns the weekend-channel demand multiplier (fallback 1.0).
func (p *StrategyParams) WkdMultiplier() float64 {
	if p.DemandMultWkd == nil {
		return 1.0
	}
	return *p.DemandMultWkd
}

// PriceStd returns the standard price, falling back to the global base.
func (p *StrategyParams) PriceStd(g *GlobalParams) float64 {
	if p.PriceWeek == nil {
		return g.PriceStdBase
	}
	return *p.PriceWeek
}

// PriceWkd returns the weekend price, falling back to the global base.
func (p *StrategyParams) PriceWkd(g *GlobalParams) float64 {
	if p.PriceWeekend == nil {
		return g.PriceWkdBase
	}
	return *p.PriceWeekend
}

// Royalty returns the royalty rate, falling back to the global base.
func (p *StrategyParams) Royalty(g *GlobalParams) float64 {
	if p.RoyaltyRate == nil {
		return g.RoyaltyRateBase
	}
	return *p.RoyaltyRate
}

// MoralWeight returns the admin-to-moral blending weight (fallback 0.6).
func (p *StrategyParams) MoralWeight() float64 {
	if p.WAdminMoral == nil {
		return DefaultWAdminMoral
	}
	return *p.WAdminMoral
}

// PrestigeBeta returns the reputation-to-prestige beta (fallback 0.4).
func (p *StrategyParams) PrestigeBeta() float64 {
	if p.BetaPrestigeRep == nil {
		return DefaultBetaPrestigeRep
	}
	return *p.BetaPrestigeRep
}

// BrandBeta returns the reputation-to-brand beta (fallback 0.5).
func (p *StrategyParams) BrandBeta() float64 {
	if p.BetaBrandRep == nil {
		return DefaultBetaBrandRep
	}
	return *p.BetaBrandRep
}

// Clone returns a deep copy of the global parameters.
func (g *GlobalParams) Clone() GlobalParams {
	out := *g
	out.OtherOperatingRate = clonePtr(g.OtherOperatingRate)
	return out
}

// Clone returns a deep copy of the strategy parameters.
func (p *StrategyParams) Clone() *StrategyParams {
	out := *p
	out.PriceWeek = clonePtr(p.PriceWeek)
	out.PriceWeekend = clonePtr(p.PriceWeekend)
	out.RoyaltyRate = clonePtr(p.RoyaltyRate)
	out.DemandMultStd = clonePtr(p.DemandMultStd)
	out.DemandMultWkd = clonePtr(p.DemandMultWkd)
	out.WAdminMoral = clonePtr(p.WAdminMoral)
	out.BetaPrestigeRep = clonePtr(p.BetaPrestigeRep)
	out.BetaBrandRep = clonePtr(p.BetaBrandRep)
	out.LiquidationValue = clonePtr(p.LiquidationValue)
	return &out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"school-strategy-lab/internal/domain"
)

// Params bundles the validated parameter store for one run setup.
type Params struct {
	Global     domain.GlobalParams
	Strategies map[string]*domain.StrategyParams
}

type fileSchema struct {
	Global struct {
		HorizonYears       int      `yaml:"horizon_years"`
		Trials             int      `yaml:"trials"`
		DiscountRate       float64  `yaml:"discount_rate"`
		AlphaMoral         float64  `yaml:"alpha_moral"`
		AlphaReputation    float64  `yaml:"alpha_reputation"`
		AlphaAcademic      float64  `yaml:"alpha_academic"`
		DebtPayment        float64  `yaml:"debt_payment"`
		DebtYears          int      `yaml:"debt_years"`
		StdMean            float64  `yaml:"std_mean"`
		StdStd             float64  `yaml:"std_std"`
		WkdMean            float64  `yaml:"wkd_mean"`
		WkdStd             float64  `yaml:"wkd_std"`
		PriceStdBase       float64  `yaml:"price_std_base"`
		PriceWkdBase       float64  `yaml:"price_wkd_base"`
		RoyaltyRateBase    float64  `yaml:"royalty_rate_base"`
		OtherOperatingRate *float64 `yaml:"other_operating_rate"`
		RenovationCost     float64  `yaml:"renovation_cost"`
	} `yaml:"global"`
	Strategies map[string]struct {
		Kind             string   `yaml:"kind"`
		PriceWeek        *float64 `yaml:"price_week"`
		PriceWeekend     *float64 `yaml:"price_weekend"`
		RoyaltyRate      *float64 `yaml:"royalty_rate"`
		DemandMultStd    *float64 `yaml:"demand_mult_std"`
		DemandMultWkd    *float64 `yaml:"demand_mult_wkd"`
		AdminScore       float64  `yaml:"admin_score"`
		PrestigeScore    float64  `yaml:"prestige_score"`
		ReputationScore  float64  `yaml:"reputation_score"`
		BrandScore       float64  `yaml:"brand_score"`
		WAdminMoral      *float64 `yaml:"w_admin_moral"`
		BetaPrestigeRep  *float64 `yaml:"beta_prestige_rep"`
		BetaBrandRep     *float64 `yaml:"beta_brand_rep"`
		LiquidationValue *float64 `yaml:"liquidation_value"`
	} `yaml:"strategies"`
}

// Load reads a parameter file from a YAML path and validates it.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params: %w", err)
	}

	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse params: %w", err)
	}

	p := &Params{
		Global: domain.GlobalParams{
			HorizonYears:       raw.Global.HorizonYears,
			Trials:             raw.Global.Trials,
			DiscountRate:       raw.Global.DiscountRate,
			AlphaMoral:         raw.Global.AlphaMoral,
			AlphaReputation:    raw.Global.AlphaReputation,
			AlphaAcademic:      raw.Global.AlphaAcademic,
			DebtPayment:        raw.Global.DebtPayment,
			DebtYears:          raw.Global.DebtYears,
			StdMean:            raw.Global.StdMean,
			StdStd:             raw.Global.StdStd,
			WkdMean:            raw.Global.WkdMean,
			WkdStd:             raw.Global.WkdStd,
			PriceStdBase:       raw.Global.PriceStdBase,
			PriceWkdBase:       raw.Global.PriceWkdBase,
			RoyaltyRateBase:    raw.Global.RoyaltyRateBase,
			OtherOperatingRate: raw.Global.OtherOperatingRate,
			RenovationCost:     raw.Global.RenovationCost,
		},
		Strategies: make(map[string]*domain.StrategyParams, len(raw.Strategies)),
	}

	for name, s := range raw.Strategies {
		p.Strategies[name] = &domain.StrategyParams{
			Kind:             domain.StrategyKind(s.Kind),
			PriceWeek:        s.PriceWeek,
			PriceWeekend:     s.PriceWeekend,
			RoyaltyRate:      s.RoyaltyRate,
			DemandMultStd:    s.DemandMultStd,
			DemandMultWkd:    s.DemandMultWkd,
			AdminScore:       s.AdminScore,
			PrestigeScore:    s.PrestigeScore,
			ReputationScore:  s.ReputationScore,
			BrandScore:       s.BrandScore,
			WAdminMoral:      s.WAdminMoral,
			BetaPrestigeRep:  s.BetaPrestigeRep,
			BetaBrandRep:     s.BetaBrandRep,
			LiquidationValue: s.LiquidationValue,
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the global invariants and every strategy's invariants.
func (p *Params) Validate() error {
	if err := p.Global.Validate(); err != nil {
		return fmt.Errorf("global params: %w", err)
	}
	if len(p.Strategies) == 0 {
		return fmt.Errorf("no strategies defined")
	}
	for name, s := range p.Strategies {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("strategy %s: %w", name, err)
		}
	}
	return nil
}

// Clone returns a deep copy suitable for scenario patching.
func (p *Params) Clone() *Params {
	out := &Params{
		Global:     p.Global.Clone(),
		Strategies: make(map[string]*domain.StrategyParams, len(p.Strategies)),
	}
	for name, s := range p.Strategies {
		out.Strategies[name] = s.Clone()
	}
	return out
}

// BaseCase returns the published base-case parameter set for the three
// validated strategies. The operating rate carries the externally calibrated
// value; demand multipliers are likewise overwritten by calibration before a
// production run.
func BaseCase() *Params {
	return &Params{
		Global: domain.GlobalParams{
			HorizonYears:       3,
			Trials:             1_000_000,
			DiscountRate:       0.08,
			AlphaMoral:         150_000,
			AlphaReputation:    75_000,
			AlphaAcademic:      100_000,
			DebtPayment:        50_000,
			DebtYears:          5,
			StdMean:            100,
			StdStd:             15,
			WkdMean:            20,
			WkdStd:             6,
			PriceStdBase:       2500,
			PriceWkdBase:       2500,
			RoyaltyRateBase:    0.16,
			OtherOperatingRate: f64(0.66),
			RenovationCost:     200_000,
		},
		Strategies: map[string]*domain.StrategyParams{
			domain.StrategyRetain: {
				Kind:            domain.KindRetain,
				RoyaltyRate:     f64(0.16),
				PriceWeek:       f64(2500),
				PriceWeekend:    f64(2500),
				AdminScore:      8.5,
				PrestigeScore:   7.0,
				ReputationScore: 7.5,
				BrandScore:      7.5,
				DemandMultStd:   f64(1.0),
				DemandMultWkd:   f64(1.0),
			},
			domain.StrategyFranchise: {
				Kind:            domain.KindFranchise,
				RoyaltyRate:     f64(0.035),
				PriceWeek:       f64(1450),
				PriceWeekend:    f64(400),
				AdminScore:      7.0,
				PrestigeScore:   7.0,
				ReputationScore: 8.5,
				BrandScore:      7.5,
				DemandMultStd:   f64(1.0),
				DemandMultWkd:   f64(0.0), // no weekend program in the base case
			},
			domain.StrategySell: {
				Kind:             domain.KindSell,
				LiquidationValue: f64(2_100_000),
				AdminScore:       3.0,
				PrestigeScore:    2.0,
				ReputationScore:  1.0,
				BrandScore:       0.0,
			},
		},
	}
}

func f64(v float64) *float64 { return &v }

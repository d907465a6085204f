package valuation

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"school-strategy-lab/internal/cashflow"
	"school-strategy-lab/internal/config"
	"school-strategy-lab/internal/demand"
	"school-strategy-lab/internal/domain"
	"school-strategy-lab/internal/intangible"
)

// Valuator errors
var (
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Valuator composes the demand sampler, cashflow builder, discounting engine
// and intangible valuation into per-strategy NPV/NEV distributions.
// Parameters are validated once at construction and treated as immutable for
// the valuator's lifetime.
type Valuator struct {
	global     domain.GlobalParams
	strategies map[string]*domain.StrategyParams
}

// NewValuator validates the parameter store and creates a valuator over it.
func NewValuator(params *config.Params) (*Valuator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	// Deep copy so later mutation of the caller's store cannot leak in.
	p := params.Clone()
	return &Valuator{global: p.Global, strategies: p.Strategies}, nil
}

// Strategy returns the named strategy's parameters.
func (v *Valuator) Strategy(name string) (*domain.StrategyParams, error) {
	s, ok := v.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Global returns the global parameters.
func (v *Valuator) Global() domain.GlobalParams {
	return v.global
}

// Simulate runs one Monte Carlo valuation of the named strategy, drawing from
// src. The Sell kind is a degenerate constant-payoff distribution and
// consumes nothing from the stream; operating kinds consume 2*N*T normal
// draws in a fixed order.
func (v *Valuator) Simulate(name string, src rand.Source) (*domain.StrategyResult, error) {
	s, err := v.Strategy(name)
	if err != nil {
		return nil, err
	}

	var npv []float64
	switch s.Kind {
	case domain.KindSell:
		npv = v.liquidationNPV(s)
	default:
		paths := demand.Sample(&v.global, s, src)
		cf, err := cashflow.Build(paths, &v.global, s)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", name, err)
		}
		vec, err := cashflow.NPV(cf, v.global.DiscountRate)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", name, err)
		}
		npv = vec.RawVector().Data
	}

	nev := make([]float64, len(npv))
	copy(nev, npv)
	floats.AddConst(intangible.Value(&v.global, s).Total, nev)

	return &domain.StrategyResult{Strategy: name, NPV: npv, NEV: nev}, nil
}

// liquidationNPV broadcasts the constant sell payoff to a length-N vector:
// liquidation value minus the full remaining debt service.
func (v *Valuator) liquidationNPV(s *domain.StrategyParams) []float64 {
	payoff := *s.LiquidationValue - v.global.DebtPayment*float64(v.global.DebtYears)
	npv := make([]float64, v.global.Trials)
	for i := range npv {
		npv[i] = payoff
	}
	return npv
}

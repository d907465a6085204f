package intangible

import "school-strategy-lab/internal/domain"

// Valuation holds the blended intangible scores and their monetized EUR
// amounts for one strategy. Purely deterministic: computed once per strategy
// per run and broadcast across all trials downstream.
type Valuation struct {
	// Blended scores on the 0-10 scale. Moral and Academic are clipped
	// into [0,10]; Reputation is the raw base score, monetized unclipped.
	Moral      float64
	Reputation float64
	Academic   float64

	MoralEUR      float64
	ReputationEUR float64
	AcademicEUR   float64

	Total float64 // sum of the three EUR amounts
}

// Value runs the fixed-weight scoring graph and monetizes the result:
//
//	prestige = clip(prestigeBase + betaPrestigeRep*repBase, 0, 10)
//	moral    = clip(w*admin + (1-w)*prestige, 0, 10)
//	academic = clip(brandBase + betaBrandRep*repBase, 0, 10)
//
// Each score is normalized to [0,1] and scaled by its alpha coefficient
// (EUR per full 10-point scale).
func Value(g *domain.GlobalParams, p *domain.StrategyParams) Valuation {
	w := p.MoralWeight()

	prestige := clip(p.PrestigeScore+p.PrestigeBeta()*p.ReputationScore, 0, 10)
	moral := clip(w*p.AdminScore+(1-w)*prestige, 0, 10)
	academic := clip(p.BrandScore+p.BrandBeta()*p.ReputationScore, 0, 10)

	v := Valuation{
		Moral:      moral,
		Reputation: p.ReputationScore,
		Academic:   academic,
	}
	v.MoralEUR = g.AlphaMoral * moral / 10
	v.ReputationEUR = g.AlphaReputation * p.ReputationScore / 10
	v.AcademicEUR = g.AlphaAcademic * academic / 10
	v.Total = v.MoralEUR + v.ReputationEUR + v.AcademicEUR
	return v
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

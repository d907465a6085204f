package demand

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"school-strategy-lab/internal/domain"
)

// Paths holds one simulation's demand draws: trials x years matrices for the
// standard weekly channel and the weekend channel. Every entry is >= 0.
type Paths struct {
	Standard *mat.Dense
	Weekend  *mat.Dense
}

// Sample draws demand paths for an operating strategy.
//
// Each standard-channel entry is Normal(globalMean*multiplier, globalStd);
// the weekend channel uses its own mean/std pair and multiplier. The
// multiplier scales the mean only, never the std. Draws are i.i.d. across
// trials, years and channels, floored at zero. The standard channel is filled
// completely before the weekend channel so that stream consumption order is
// well defined.
func Sample(g *domain.GlobalParams, p *domain.StrategyParams, src rand.Source) *Paths {
	n := g.Trials
	t := g.HorizonYears

	std := draw(n, t, g.StdMean*p.StdMultiplier(), g.StdStd, src)
	wkd := draw(n, t, g.WkdMean*p.WkdMultiplier(), g.WkdStd, src)

	return &Paths{Standard: std, Weekend: wkd}
}

// Means returns a single deterministic path pinned to the global historical
// means (status-quo variant: one trial, zero variance).
func Means(g *domain.GlobalParams) *Paths {
	t := g.HorizonYears
	std := make([]float64, t)
	wkd := make([]float64, t)
	for i := range std {
		std[i] = g.StdMean
		wkd[i] = g.WkdMean
	}
	return &Paths{
		Standard: mat.NewDense(1, t, std),
		Weekend:  mat.NewDense(1, t, wkd),
	}
}

func draw(n, t int, mu, sigma float64, src rand.Source) *mat.Dense {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	data := make([]float64, n*t)
	for i := range data {
		v := dist.Rand()
		if v < 0 {
			v = 0 // demand cannot be negative
		}
		data[i] = v
	}
	return mat.NewDense(n, t, data)
}

package demand

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-strategy-lab/internal/domain"
)

func f(v float64) *float64 { return &v }

func testGlobal() domain.GlobalParams {
	rate := 0.5
	return domain.GlobalParams{
		HorizonYears:       4,
		Trials:             500,
		DiscountRate:       0.08,
		StdMean:            100,
		StdStd:             15,
		WkdMean:            20,
		WkdStd:             6,
		OtherOperatingRate: &rate,
	}
}

func TestSampleShape(t *testing.T) {
	g := testGlobal()
	p := &domain.StrategyParams{Kind: domain.KindRetain}

	paths := Sample(&g, p, rand.NewPCG(1, 1))

	n, ts := paths.Standard.Dims()
	assert.Equal(t, g.Trials, n)
	assert.Equal(t, g.HorizonYears, ts)

	n, ts = paths.Weekend.Dims()
	assert.Equal(t, g.Trials, n)
	assert.Equal(t, g.HorizonYears, ts)
}

func TestSampleNonNegative(t *testing.T) {
	// A mean far below zero forces the floor to fire on nearly every draw.
	g := testGlobal()
	g.StdMean = -50
	g.WkdMean = -10
	p := &domain.StrategyParams{Kind: domain.KindRetain}

	paths := Sample(&g, p, rand.NewPCG(7, 7))

	for _, m := range []interface{ At(i, j int) float64 }{paths.Standard, paths.Weekend} {
		for i := 0; i < g.Trials; i++ {
			for j := 0; j < g.HorizonYears; j++ {
				require.GreaterOrEqual(t, m.At(i, j), 0.0)
			}
		}
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	g := testGlobal()
	p := &domain.StrategyParams{Kind: domain.KindFranchise}

	a := Sample(&g, p, rand.NewPCG(42, 42))
	b := Sample(&g, p, rand.NewPCG(42, 42))

	assert.Equal(t, a.Standard.RawMatrix().Data, b.Standard.RawMatrix().Data)
	assert.Equal(t, a.Weekend.RawMatrix().Data, b.Weekend.RawMatrix().Data)
}

func TestSampleZeroStdIsDegenerate(t *testing.T) {
	g := testGlobal()
	g.StdStd = 0
	g.WkdStd = 0
	p := &domain.StrategyParams{
		Kind:          domain.KindFranchise,
		DemandMultStd: f(1.2),
		DemandMultWkd: f(0.0),
	}

	paths := Sample(&g, p, rand.NewPCG(3, 3))

	for i := 0; i < g.Trials; i++ {
		for j := 0; j < g.HorizonYears; j++ {
			require.Equal(t, 120.0, paths.Standard.At(i, j))
			require.Equal(t, 0.0, paths.Weekend.At(i, j))
		}
	}
}

func TestSampleMultiplierScalesMeanNotStd(t *testing.T) {
	g := testGlobal()
	g.Trials = 20000
	g.HorizonYears = 1
	p := &domain.StrategyParams{Kind: domain.KindRetain, DemandMultStd: f(2.0)}

	paths := Sample(&g, p, rand.NewPCG(11, 11))

	sum := 0.0
	for i := 0; i < g.Trials; i++ {
		sum += paths.Standard.At(i, 0)
	}
	mean := sum / float64(g.Trials)

	// Mean doubles to ~200 while the std stays at 15; the sample mean of
	// 20k draws lands well within a ±1 band.
	assert.InDelta(t, 200.0, mean, 1.0)
}

func TestMeansPinsHistoricalMeans(t *testing.T) {
	g := testGlobal()

	paths := Means(&g)

	n, ts := paths.Standard.Dims()
	require.Equal(t, 1, n)
	require.Equal(t, g.HorizonYears, ts)

	for j := 0; j < ts; j++ {
		assert.Equal(t, g.StdMean, paths.Standard.At(0, j))
		assert.Equal(t, g.WkdMean, paths.Weekend.At(0, j))
	}
}

package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-strategy-lab/internal/config"
	"school-strategy-lab/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestApplyNullOverrideReproducesBase(t *testing.T) {
	base := config.BaseCase()

	got, err := Apply(base, Definition{Name: "Base case"})
	require.NoError(t, err)

	assert.Equal(t, base.Global, got.Global)
	assert.Equal(t, base.Strategies, got.Strategies)
}

func TestApplyZeroShiftIsIdempotent(t *testing.T) {
	base := config.BaseCase()

	got, err := Apply(base, Definition{
		Name:   "zero shift",
		Global: GlobalOverride{OtherOperatingRateShift: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, *base.Global.OtherOperatingRate, *got.Global.OtherOperatingRate)
}

func TestApplyShiftIsDeltaNotReplacement(t *testing.T) {
	base := config.BaseCase()
	calibrated := *base.Global.OtherOperatingRate

	got, err := Apply(base, Definition{
		Name:   "Cost inflation shock",
		Global: GlobalOverride{OtherOperatingRateShift: 0.06},
	})
	require.NoError(t, err)
	assert.InDelta(t, calibrated+0.06, *got.Global.OtherOperatingRate, 1e-12)

	// base untouched
	assert.Equal(t, calibrated, *base.Global.OtherOperatingRate)
}

func TestApplyUncalibratedBaseFails(t *testing.T) {
	base := config.BaseCase()
	base.Global.OtherOperatingRate = nil

	_, err := Apply(base, Definition{Name: "any"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not calibrated")
}

func TestApplyStrategyOverrides(t *testing.T) {
	base := config.BaseCase()

	got, err := Apply(base, Definition{
		Name: "Worse franchise deal",
		Strategies: map[string]StrategyOverride{
			domain.StrategyFranchise: {
				RoyaltyRate:     f(0.06),
				ReputationScore: f(9.0),
			},
		},
	})
	require.NoError(t, err)

	fr := got.Strategies[domain.StrategyFranchise]
	assert.Equal(t, 0.06, *fr.RoyaltyRate)
	assert.Equal(t, 9.0, fr.ReputationScore)

	// All other keys are untouched.
	assert.Equal(t, 1450.0, *fr.PriceWeek)
	assert.Equal(t, 7.0, fr.AdminScore)

	// The base strategy is not mutated.
	assert.Equal(t, 0.035, *base.Strategies[domain.StrategyFranchise].RoyaltyRate)
	assert.Equal(t, 8.5, base.Strategies[domain.StrategyFranchise].ReputationScore)
}

func TestApplyUnknownStrategyFails(t *testing.T) {
	base := config.BaseCase()

	_, err := Apply(base, Definition{
		Name:       "typo",
		Strategies: map[string]StrategyOverride{"FRANCHIZE": {RoyaltyRate: f(0.04)}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestApplyValidatesResult(t *testing.T) {
	base := config.BaseCase()

	_, err := Apply(base, Definition{
		Name: "broken",
		Strategies: map[string]StrategyOverride{
			domain.StrategyRetain: {AdminScore: f(42)},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin_score")
}

func TestApplyDoesNotAliasPatchPointers(t *testing.T) {
	base := config.BaseCase()
	royalty := 0.05
	def := Definition{
		Name: "aliased",
		Strategies: map[string]StrategyOverride{
			domain.StrategyFranchise: {RoyaltyRate: &royalty},
		},
	}

	got, err := Apply(base, def)
	require.NoError(t, err)

	royalty = 0.9
	assert.Equal(t, 0.05, *got.Strategies[domain.StrategyFranchise].RoyaltyRate)
}

package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketlens/options-radar/src/models"
)

func TestScorer(t *testing.T) {
	scorer := NewScorer(models.DefaultScoringWeights())

	base := func() models.Recommendation {
		return models.Recommendation{
			Strategy:             models.SellPut,
			ReturnOnCapitalPct:   2.0,
			Volume:               500,
			ImpliedVolatilityPct: 25,
			DaysToExpiry:         30,
		}
	}

	t.Run("deterministic", func(t *testing.T) {
		rec := base()

		first := scorer.Score(&rec)
		second := scorer.Score(&rec)

		assert.Equal(t, first, second)
	})

	t.Run("composition at target tenor", func(t *testing.T) {
		rec := base()

		// 2×5 return, capped-below liquidity log(501)×2, no IV penalty,
		// full 30×0.5 time bonus.
		expected := 10.0 + math.Log(501)*2 + 15.0

		assert.InDelta(t, expected, scorer.Score(&rec), 1e-9)
	})

	t.Run("higher return scores higher", func(t *testing.T) {
		low := base()
		high := base()
		high.ReturnOnCapitalPct = 3.0

		assert.Greater(t, scorer.Score(&high), scorer.Score(&low))
	})

	t.Run("liquidity bonus is capped", func(t *testing.T) {
		liquid := base()
		liquid.Volume = 100_000
		moreLiquid := base()
		moreLiquid.Volume = 10_000_000

		assert.Equal(t, scorer.Score(&liquid), scorer.Score(&moreLiquid))
	})

	t.Run("only above-baseline IV is penalized", func(t *testing.T) {
		calm := base()
		calm.ImpliedVolatilityPct = 10
		atBaseline := base()
		atBaseline.ImpliedVolatilityPct = 30
		elevated := base()
		elevated.ImpliedVolatilityPct = 50

		assert.Equal(t, scorer.Score(&atBaseline), scorer.Score(&calm))
		assert.InDelta(t, scorer.Score(&atBaseline)-20*0.3, scorer.Score(&elevated), 1e-9)
	})

	t.Run("time fit peaks at thirty days", func(t *testing.T) {
		near := base()
		near.DaysToExpiry = 30
		early := base()
		early.DaysToExpiry = 10
		late := base()
		late.DaysToExpiry = 50

		assert.Greater(t, scorer.Score(&near), scorer.Score(&early))
		assert.Equal(t, scorer.Score(&early), scorer.Score(&late))
	})

	t.Run("risk multipliers discount naked calls and spreads", func(t *testing.T) {
		sellPut := base()
		nakedCall := base()
		nakedCall.Strategy = models.SellCall
		spread := base()
		spread.Strategy = models.BullCallSpread

		assert.InDelta(t, scorer.Score(&sellPut)*0.7, scorer.Score(&nakedCall), 1e-9)
		assert.InDelta(t, scorer.Score(&sellPut)*0.8, scorer.Score(&spread), 1e-9)
	})

	t.Run("clamped at zero", func(t *testing.T) {
		rec := base()
		rec.ReturnOnCapitalPct = 0
		rec.Volume = 0
		rec.ImpliedVolatilityPct = 300
		rec.DaysToExpiry = 30

		assert.Equal(t, 0.0, scorer.Score(&rec))
	})
}

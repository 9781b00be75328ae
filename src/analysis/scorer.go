package analysis

import (
	"math"

	"github.com/marketlens/options-radar/src/models"
)

// Scorer assigns the comparable desirability score used to order candidates
// within one scan. It is deterministic: identical inputs produce bit-for-bit
// identical scores.
type Scorer struct {
	weights models.ScoringWeights
}

func NewScorer(weights models.ScoringWeights) *Scorer {
	return &Scorer{weights: weights}
}

// Score combines return on capital, a bounded liquidity bonus, an
// above-baseline IV penalty, and a bonus for expirations near the target
// tenor, then discounts structurally riskier strategies. Clamped at zero.
func (s *Scorer) Score(rec *models.Recommendation) float64 {
	w := s.weights

	score := rec.ReturnOnCapitalPct * w.ReturnWeight

	liquidity := math.Log(float64(rec.Volume)+1) * w.LiquidityWeight
	score += math.Min(liquidity, w.LiquidityCap)

	// IV below baseline is not rewarded; only above-baseline IV is a
	// negative signal.
	if rec.ImpliedVolatilityPct > w.IVBaselinePct {
		score -= (rec.ImpliedVolatilityPct - w.IVBaselinePct) * w.IVPenaltyWeight
	}

	score += (w.TimeFitTargetDays - math.Abs(float64(rec.DaysToExpiry)-w.TimeFitTargetDays)) * w.TimeFitWeight

	score *= w.RiskMultiplier(rec.Strategy)

	return math.Max(0, score)
}

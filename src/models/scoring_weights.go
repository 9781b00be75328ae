package models

// ScoringWeights are the tunable constants of the scorer. They are
// configuration, not business logic: higher return and liquidity raise the
// score, above-baseline IV and structurally riskier strategies lower it.
// One set of weights must be held constant across a single scan so
// cross-strategy comparison stays meaningful.
type ScoringWeights struct {
	ReturnWeight      float64 `yaml:"return_weight"`
	LiquidityWeight   float64 `yaml:"liquidity_weight"`
	LiquidityCap      float64 `yaml:"liquidity_cap"`
	IVPenaltyWeight   float64 `yaml:"iv_penalty_weight"`
	IVBaselinePct     float64 `yaml:"iv_baseline_pct"`
	TimeFitWeight     float64 `yaml:"time_fit_weight"`
	TimeFitTargetDays float64 `yaml:"time_fit_target_days"`

	// RiskMultipliers discount structurally riskier strategies so raw return
	// does not automatically crown the riskiest trade. Strategies not listed
	// default to 1.0.
	RiskMultipliers map[Strategy]float64 `yaml:"risk_multipliers"`
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		ReturnWeight:      5.0,
		LiquidityWeight:   2.0,
		LiquidityCap:      15.0,
		IVPenaltyWeight:   0.3,
		IVBaselinePct:     30.0,
		TimeFitWeight:     0.5,
		TimeFitTargetDays: 30.0,
		RiskMultipliers: map[Strategy]float64{
			SellCall:       0.7,
			BullCallSpread: 0.8,
		},
	}
}

func (w ScoringWeights) RiskMultiplier(s Strategy) float64 {
	if m, ok := w.RiskMultipliers[s]; ok {
		return m
	}

	return 1.0
}

package models

import "time"

// Recommendation is the output of one strategy analyzer for one symbol.
// Immutable once created; ranked and discarded after a single scan.
type Recommendation struct {
	Symbol      StockSymbol `json:"symbol"`
	CompanyName string      `json:"company_name"`
	Sector      string      `json:"sector"`
	Strategy    Strategy    `json:"strategy"`

	StockPrice  float64 `json:"stock_price"`
	StrikePrice float64 `json:"strike_price"`
	// ShortStrike is set only for Bull Call Spread (the sold leg).
	ShortStrike float64 `json:"short_strike,omitempty"`

	// Premium is per-share; for Bull Call Spread it is the net debit.
	Premium      float64 `json:"premium"`
	TotalPremium float64 `json:"total_premium"`

	ExpirationDate time.Time `json:"expiration_date"`
	DaysToExpiry   int       `json:"days_to_expiry"`

	// For Bull Call Spread, Volume and OpenInterest are the minimum across
	// both legs.
	Volume       int `json:"volume"`
	OpenInterest int `json:"open_interest"`

	ImpliedVolatilityPct float64 `json:"implied_volatility_pct"`
	ReturnOnCapitalPct   float64 `json:"return_on_capital_pct"`
	AnnualizedReturnPct  float64 `json:"annualized_return_pct"`

	RiskLevel RiskLevel               `json:"risk_level"`
	Outlook   string                  `json:"outlook"`
	Narrative string                  `json:"narrative"`
	Analysis  *RecommendationAnalysis `json:"analysis,omitempty"`

	// Score orders recommendations within one scan; it has no meaning across
	// scans with different scoring weights.
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`

	// Synthetic marks recommendations derived from fabricated fallback data.
	Synthetic bool `json:"synthetic"`
}

// RecommendationAnalysis is the long-form trade rationale shown alongside the
// one-line narrative.
type RecommendationAnalysis struct {
	Summary           string `json:"summary"`
	TechnicalAnalysis string `json:"technical_analysis"`
	RiskAssessment    string `json:"risk_assessment"`
	Strategy          string `json:"strategy"`
}

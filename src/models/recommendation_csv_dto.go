package models

// RecommendationCSVDTO flattens a Recommendation for CSV export.
type RecommendationCSVDTO struct {
	Rank                 int     `csv:"rank"`
	Symbol               string  `csv:"symbol"`
	CompanyName          string  `csv:"company_name"`
	Sector               string  `csv:"sector"`
	Strategy             string  `csv:"strategy"`
	StockPrice           float64 `csv:"stock_price"`
	StrikePrice          float64 `csv:"strike_price"`
	ShortStrike          float64 `csv:"short_strike"`
	Premium              float64 `csv:"premium"`
	TotalPremium         float64 `csv:"total_premium"`
	ExpirationDate       string  `csv:"expiration_date"`
	DaysToExpiry         int     `csv:"days_to_expiry"`
	Volume               int     `csv:"volume"`
	OpenInterest         int     `csv:"open_interest"`
	ImpliedVolatilityPct float64 `csv:"implied_volatility_pct"`
	ReturnOnCapitalPct   float64 `csv:"return_on_capital_pct"`
	AnnualizedReturnPct  float64 `csv:"annualized_return_pct"`
	RiskLevel            string  `csv:"risk_level"`
	Score                float64 `csv:"score"`
	Synthetic            bool    `csv:"synthetic"`
}

func NewRecommendationCSVDTO(rec Recommendation) RecommendationCSVDTO {
	return RecommendationCSVDTO{
		Rank:                 rec.Rank,
		Symbol:               rec.Symbol.String(),
		CompanyName:          rec.CompanyName,
		Sector:               rec.Sector,
		Strategy:             string(rec.Strategy),
		StockPrice:           rec.StockPrice,
		StrikePrice:          rec.StrikePrice,
		ShortStrike:          rec.ShortStrike,
		Premium:              rec.Premium,
		TotalPremium:         rec.TotalPremium,
		ExpirationDate:       rec.ExpirationDate.Format("2006-01-02"),
		DaysToExpiry:         rec.DaysToExpiry,
		Volume:               rec.Volume,
		OpenInterest:         rec.OpenInterest,
		ImpliedVolatilityPct: rec.ImpliedVolatilityPct,
		ReturnOnCapitalPct:   rec.ReturnOnCapitalPct,
		AnnualizedReturnPct:  rec.AnnualizedReturnPct,
		RiskLevel:            string(rec.RiskLevel),
		Score:                rec.Score,
		Synthetic:            rec.Synthetic,
	}
}

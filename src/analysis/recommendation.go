package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/utils"
)

type recommendationInput struct {
	symbol       models.StockSymbol
	strategy     models.Strategy
	stockPrice   float64
	strikePrice  float64
	shortStrike  float64
	premium      float64
	expiration   time.Time
	daysToExpiry int
	volume       int
	openInterest int
	ivPct        float64
	returnPct    float64
	riskLevel    models.RiskLevel
	narrative    string
}

// buildRecommendation fills in the derived fields shared by every strategy:
// per-contract totals, annualized return, outlook, and the long-form analysis
// block. Scoring happens later, in one pass over all candidates.
func buildRecommendation(in recommendationInput) *models.Recommendation {
	annualizedPct := in.returnPct / float64(in.daysToExpiry) * 365

	rec := &models.Recommendation{
		Symbol:               in.symbol,
		CompanyName:          in.symbol.CompanyName(),
		Sector:               in.symbol.Sector(),
		Strategy:             in.strategy,
		StockPrice:           roundCents(in.stockPrice),
		StrikePrice:          roundCents(in.strikePrice),
		ShortStrike:          roundCents(in.shortStrike),
		Premium:              roundCents(in.premium),
		TotalPremium:         roundCents(in.premium * models.ContractSize),
		ExpirationDate:       in.expiration,
		DaysToExpiry:         in.daysToExpiry,
		Volume:               in.volume,
		OpenInterest:         in.openInterest,
		ImpliedVolatilityPct: in.ivPct,
		ReturnOnCapitalPct:   in.returnPct,
		AnnualizedReturnPct:  annualizedPct,
		RiskLevel:            in.riskLevel,
		Outlook:              outlook(in.returnPct, in.riskLevel),
		Narrative:            in.narrative,
	}

	rec.Analysis = buildAnalysis(rec)

	return rec
}

func outlook(returnPct float64, risk models.RiskLevel) string {
	switch {
	case returnPct > 3 && risk == models.RiskLow:
		return "Strong Buy - Excellent opportunity"
	case returnPct > 2 && (risk == models.RiskMedium || risk == models.RiskLowToMedium):
		return "Buy - Good risk/reward"
	case returnPct > 4 && risk == models.RiskHigh:
		return "Moderate - High reward potential"
	default:
		return "Consider - Review conditions"
	}
}

func buildAnalysis(rec *models.Recommendation) *models.RecommendationAnalysis {
	distancePct := math.Abs((rec.StockPrice - rec.StrikePrice) / rec.StockPrice * 100)

	obligation := "Assignment carries no share obligation"
	switch rec.Strategy {
	case models.SellPut:
		obligation = "Assignment would require buying 100 shares at the strike price"
	case models.SellCall, models.CoveredCall:
		obligation = "Assignment would require delivering 100 shares at the strike price"
	}

	return &models.RecommendationAnalysis{
		Summary: fmt.Sprintf("%s %s with a %.1f%% distance between strike and spot. %d days to expiration with %s premium per share.",
			rec.CompanyName, rec.Strategy, distancePct, rec.DaysToExpiry, utils.FormatUSD(rec.Premium)),
		TechnicalAnalysis: fmt.Sprintf("Strike positioned %.1f%% from the current market level. %s risk profile based on implied volatility of %.1f%% and strike selection.",
			distancePct, rec.RiskLevel, rec.ImpliedVolatilityPct),
		RiskAssessment: fmt.Sprintf("%s risk. %s.", rec.RiskLevel, obligation),
		Strategy: fmt.Sprintf("%s at %s strike, %s total premium per contract, expires in %d days.",
			rec.Strategy, utils.FormatUSD(rec.StrikePrice), utils.FormatUSD(rec.TotalPremium), rec.DaysToExpiry),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

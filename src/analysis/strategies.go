package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/utils"
)

// Each strategy shares one shape: filter contracts through a moneyness and
// liquidity window, select the single best contract by a strategy-specific
// tie-break, compute the economics, assess risk, and build the narrative.
// The windows below are the canonical parameter table; all six analyzers are
// driven from it so the thresholds stay auditable in one place.

type contractWindow struct {
	minRatio     float64 // strike lower bound as a fraction of stock price
	maxRatio     float64 // strike upper bound as a fraction of stock price
	minInclusive bool
	maxInclusive bool
	minVolume    int     // exclusive: volume must be strictly greater
	minPremium   float64 // inclusive per-share premium floor
}

var strategyWindows = map[models.Strategy]contractWindow{
	models.SellPut:     {minRatio: 0.90, maxRatio: 1.00, minInclusive: true, maxInclusive: false, minVolume: 10, minPremium: 0.5},
	models.SellCall:    {minRatio: 1.00, maxRatio: 1.10, minInclusive: false, maxInclusive: false, minVolume: 10, minPremium: 0.5},
	models.BuyCall:     {minRatio: 0.98, maxRatio: 1.05, minInclusive: true, maxInclusive: true, minVolume: 10, minPremium: 0.5},
	models.BuyPut:      {minRatio: 0.95, maxRatio: 1.02, minInclusive: true, maxInclusive: true, minVolume: 10, minPremium: 0.5},
	models.CoveredCall: {minRatio: 1.00, maxRatio: 1.08, minInclusive: false, maxInclusive: false, minVolume: 10, minPremium: 0.3},
}

// Bull call spread legs tolerate thinner volume than single-leg strategies.
var (
	spreadLongWindow  = contractWindow{minRatio: 0.98, maxRatio: 1.02, minInclusive: true, maxInclusive: true, minVolume: 5, minPremium: 0.5}
	spreadShortWindow = contractWindow{minRatio: 1.02, maxRatio: 1.10, minInclusive: false, maxInclusive: false, minVolume: 5, minPremium: 0.5}
)

func (w contractWindow) admits(stockPrice float64, c models.OptionContract, premium float64) bool {
	lower := stockPrice * w.minRatio
	upper := stockPrice * w.maxRatio

	if w.minInclusive {
		if c.Strike < lower {
			return false
		}
	} else if c.Strike <= lower {
		return false
	}

	if w.maxInclusive {
		if c.Strike > upper {
			return false
		}
	} else if c.Strike >= upper {
		return false
	}

	return c.Volume > w.minVolume && premium >= w.minPremium
}

func filterContracts(stockPrice float64, contracts []models.OptionContract, w contractWindow, premiumOf func(models.OptionContract) float64) []models.OptionContract {
	var viable []models.OptionContract
	for _, c := range contracts {
		if w.admits(stockPrice, c, premiumOf(c)) {
			viable = append(viable, c)
		}
	}

	return viable
}

// selectByPremiumLiquidity prefers rich premium on liquid strikes:
// max(premium × log(volume+1)). Used by the premium-collection strategies.
func selectByPremiumLiquidity(contracts []models.OptionContract, premiumOf func(models.OptionContract) float64) models.OptionContract {
	best := contracts[0]
	bestScore := premiumOf(best) * math.Log(float64(best.Volume)+1)

	for _, c := range contracts[1:] {
		score := premiumOf(c) * math.Log(float64(c.Volume)+1)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best
}

// selectByVolumePerCost prefers cheap, heavily traded contracts:
// max(volume / premium). Used by the premium-paying strategies.
func selectByVolumePerCost(contracts []models.OptionContract, premiumOf func(models.OptionContract) float64) models.OptionContract {
	best := contracts[0]
	bestScore := float64(best.Volume) / premiumOf(best)

	for _, c := range contracts[1:] {
		score := float64(c.Volume) / premiumOf(c)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	return best
}

// AnalyzeChain runs all six strategy analyzers against a normalized chain and
// returns the non-nil candidates, unscored.
func AnalyzeChain(chain *models.OptionChain) []models.Recommendation {
	var recs []models.Recommendation

	analyzers := []func(models.StockSymbol, float64, *models.OptionChain) *models.Recommendation{
		analyzeSellPutChain,
		analyzeSellCallChain,
		analyzeBuyCallChain,
		analyzeBuyPutChain,
		analyzeCoveredCallChain,
		analyzeBullCallSpreadChain,
	}

	for _, analyze := range analyzers {
		if rec := analyze(chain.Symbol, chain.StockPrice, chain); rec != nil {
			rec.Synthetic = chain.Synthetic
			recs = append(recs, *rec)
		}
	}

	return recs
}

func analyzeSellPutChain(symbol models.StockSymbol, price float64, chain *models.OptionChain) *models.Recommendation {
	return AnalyzeSellPut(symbol, price, chain.Puts, chain.Expiration, chain.DaysToExpiry)
}

func analyzeSellCallChain(symbol models.StockSymbol, price float64, chain *models.OptionChain) *models.Recommendation {
	return AnalyzeSellCall(symbol, price, chain.Calls, chain.Expiration, chain.DaysToExpiry)
}

func analyzeBuyCallChain(symbol models.StockSymbol, price float64, chain *models.OptionChain) *models.Recommendation {
	return AnalyzeBuyCall(symbol, price, chain.Calls, chain.Expiration, chain.DaysToExpiry)
}

func analyzeBuyPutChain(symbol models.StockSymbol, price float64, chain *models.OptionChain) *models.Recommendation {
	return AnalyzeBuyPut(symbol, price, chain.Puts, chain.Expiration, chain.DaysToExpiry)
}

func analyzeCoveredCallChain(symbol models.StockSymbol, price float64, chain *models.OptionChain) *models.Recommendation {
	return AnalyzeCoveredCall(symbol, price, chain.Calls, chain.Expiration, chain.DaysToExpiry)
}

func analyzeBullCallSpreadChain(symbol models.StockSymbol, price float64, chain *models.OptionChain) *models.Recommendation {
	return AnalyzeBullCallSpread(symbol, price, chain.Calls, chain.Expiration, chain.DaysToExpiry)
}

// AnalyzeSellPut looks for a cash-secured put: an OTM put within 10% of the
// stock price whose premium is worth the assignment obligation.
func AnalyzeSellPut(symbol models.StockSymbol, stockPrice float64, puts []models.OptionContract, expiration time.Time, daysToExpiry int) *models.Recommendation {
	viable := filterContracts(stockPrice, puts, strategyWindows[models.SellPut], models.OptionContract.SellPremium)
	if len(viable) == 0 {
		return nil
	}

	best := selectByPremiumLiquidity(viable, models.OptionContract.SellPremium)
	premium := best.SellPremium()
	returnPct := premium / best.Strike * 100
	distancePct := (stockPrice - best.Strike) / stockPrice * 100

	narrative := fmt.Sprintf(
		"SELL PUT (Cash-Secured): Sell 1 %s put contract at %s strike expiring %s. Collect %s premium upfront. You are obligated to BUY 100 shares at %s if assigned. Break-even: %s. Maximum profit: %s.",
		symbol, utils.FormatUSD(best.Strike), formatExpiration(expiration),
		utils.FormatUSD(premium*models.ContractSize), utils.FormatUSD(best.Strike),
		utils.FormatUSD(best.Strike-premium), utils.FormatUSD(premium*models.ContractSize),
	)

	return buildRecommendation(recommendationInput{
		symbol:       symbol,
		strategy:     models.SellPut,
		stockPrice:   stockPrice,
		strikePrice:  best.Strike,
		premium:      premium,
		expiration:   expiration,
		daysToExpiry: daysToExpiry,
		volume:       best.Volume,
		openInterest: best.OpenInterest,
		ivPct:        best.ImpliedVolatilityPct(),
		returnPct:    returnPct,
		riskLevel:    assessSellPutRisk(best.ImpliedVolatilityPct(), distancePct),
		narrative:    narrative,
	})
}

// AnalyzeSellCall looks for a naked OTM call within 10% of the stock price.
// Risk is always High: losses are unbounded if the stock rips.
func AnalyzeSellCall(symbol models.StockSymbol, stockPrice float64, calls []models.OptionContract, expiration time.Time, daysToExpiry int) *models.Recommendation {
	viable := filterContracts(stockPrice, calls, strategyWindows[models.SellCall], models.OptionContract.SellPremium)
	if len(viable) == 0 {
		return nil
	}

	best := selectByPremiumLiquidity(viable, models.OptionContract.SellPremium)
	premium := best.SellPremium()
	returnPct := premium / stockPrice * 100

	narrative := fmt.Sprintf(
		"SELL CALL (Naked): Sell 1 %s call contract at %s strike expiring %s. Collect %s premium upfront. You are obligated to SELL 100 shares at %s if assigned. Maximum profit: %s. Risk: unlimited if the stock rises sharply.",
		symbol, utils.FormatUSD(best.Strike), formatExpiration(expiration),
		utils.FormatUSD(premium*models.ContractSize), utils.FormatUSD(best.Strike),
		utils.FormatUSD(premium*models.ContractSize),
	)

	return buildRecommendation(recommendationInput{
		symbol:       symbol,
		strategy:     models.SellCall,
		stockPrice:   stockPrice,
		strikePrice:  best.Strike,
		premium:      premium,
		expiration:   expiration,
		daysToExpiry: daysToExpiry,
		volume:       best.Volume,
		openInterest: best.OpenInterest,
		ivPct:        best.ImpliedVolatilityPct(),
		returnPct:    returnPct,
		riskLevel:    models.RiskHigh,
		narrative:    narrative,
	})
}

// AnalyzeBuyCall looks for a near-ATM call. The return is stress-tested
// against a +10% move in the underlying by expiration.
func AnalyzeBuyCall(symbol models.StockSymbol, stockPrice float64, calls []models.OptionContract, expiration time.Time, daysToExpiry int) *models.Recommendation {
	viable := filterContracts(stockPrice, calls, strategyWindows[models.BuyCall], models.OptionContract.BuyPremium)
	if len(viable) == 0 {
		return nil
	}

	best := selectByVolumePerCost(viable, models.OptionContract.BuyPremium)
	cost := best.BuyPremium()
	breakEven := best.Strike + cost
	returnPct := (stockPrice*1.10 - best.Strike - cost) / cost * 100

	narrative := fmt.Sprintf(
		"BUY CALL (Long): Buy 1 %s call contract at %s strike expiring %s for %s. Break-even at expiration: %s. Profit potential is unlimited above break-even; maximum loss is the %s premium paid.",
		symbol, utils.FormatUSD(best.Strike), formatExpiration(expiration),
		utils.FormatUSD(cost*models.ContractSize), utils.FormatUSD(breakEven),
		utils.FormatUSD(cost*models.ContractSize),
	)

	return buildRecommendation(recommendationInput{
		symbol:       symbol,
		strategy:     models.BuyCall,
		stockPrice:   stockPrice,
		strikePrice:  best.Strike,
		premium:      cost,
		expiration:   expiration,
		daysToExpiry: daysToExpiry,
		volume:       best.Volume,
		openInterest: best.OpenInterest,
		ivPct:        best.ImpliedVolatilityPct(),
		returnPct:    returnPct,
		riskLevel:    assessBuySideRisk(best.ImpliedVolatilityPct()),
		narrative:    narrative,
	})
}

// AnalyzeBuyPut looks for a near-ATM put as a bearish bet or hedge. The
// return is stress-tested against a -10% move in the underlying.
func AnalyzeBuyPut(symbol models.StockSymbol, stockPrice float64, puts []models.OptionContract, expiration time.Time, daysToExpiry int) *models.Recommendation {
	viable := filterContracts(stockPrice, puts, strategyWindows[models.BuyPut], models.OptionContract.BuyPremium)
	if len(viable) == 0 {
		return nil
	}

	best := selectByVolumePerCost(viable, models.OptionContract.BuyPremium)
	cost := best.BuyPremium()
	breakEven := best.Strike - cost
	returnPct := (best.Strike - stockPrice*0.90 - cost) / cost * 100

	narrative := fmt.Sprintf(
		"BUY PUT (Long): Buy 1 %s put contract at %s strike expiring %s for %s. Break-even at expiration: %s. Profits if the stock falls below break-even; maximum loss is the %s premium paid.",
		symbol, utils.FormatUSD(best.Strike), formatExpiration(expiration),
		utils.FormatUSD(cost*models.ContractSize), utils.FormatUSD(breakEven),
		utils.FormatUSD(cost*models.ContractSize),
	)

	return buildRecommendation(recommendationInput{
		symbol:       symbol,
		strategy:     models.BuyPut,
		stockPrice:   stockPrice,
		strikePrice:  best.Strike,
		premium:      cost,
		expiration:   expiration,
		daysToExpiry: daysToExpiry,
		volume:       best.Volume,
		openInterest: best.OpenInterest,
		ivPct:        best.ImpliedVolatilityPct(),
		returnPct:    returnPct,
		riskLevel:    assessBuySideRisk(best.ImpliedVolatilityPct()),
		narrative:    narrative,
	})
}

// AnalyzeCoveredCall looks for an OTM call to write against 100 owned shares.
// Return is the max profit if called away: strike appreciation plus premium.
func AnalyzeCoveredCall(symbol models.StockSymbol, stockPrice float64, calls []models.OptionContract, expiration time.Time, daysToExpiry int) *models.Recommendation {
	viable := filterContracts(stockPrice, calls, strategyWindows[models.CoveredCall], models.OptionContract.SellPremium)
	if len(viable) == 0 {
		return nil
	}

	best := selectByPremiumLiquidity(viable, models.OptionContract.SellPremium)
	premium := best.SellPremium()
	returnPct := (best.Strike - stockPrice + premium) / stockPrice * 100

	narrative := fmt.Sprintf(
		"COVERED CALL: Own 100 shares of %s (cost: %s), SELL 1 call at %s strike expiring %s. Collect %s premium immediately. If the stock stays below %s, keep the premium and the shares. If assigned, sell at %s for a total profit of %s.",
		symbol, utils.FormatUSD(stockPrice*models.ContractSize),
		utils.FormatUSD(best.Strike), formatExpiration(expiration),
		utils.FormatUSD(premium*models.ContractSize), utils.FormatUSD(best.Strike),
		utils.FormatUSD(best.Strike), utils.FormatUSD((best.Strike-stockPrice+premium)*models.ContractSize),
	)

	return buildRecommendation(recommendationInput{
		symbol:       symbol,
		strategy:     models.CoveredCall,
		stockPrice:   stockPrice,
		strikePrice:  best.Strike,
		premium:      premium,
		expiration:   expiration,
		daysToExpiry: daysToExpiry,
		volume:       best.Volume,
		openInterest: best.OpenInterest,
		ivPct:        best.ImpliedVolatilityPct(),
		returnPct:    returnPct,
		riskLevel:    models.RiskLowToMedium,
		narrative:    narrative,
	})
}

// AnalyzeBullCallSpread pairs a near-ATM long call with a further-OTM short
// call. The first eligible pair is taken; the legs must price to a positive
// net debit or the spread makes no sense.
func AnalyzeBullCallSpread(symbol models.StockSymbol, stockPrice float64, calls []models.OptionContract, expiration time.Time, daysToExpiry int) *models.Recommendation {
	longLegs := filterContracts(stockPrice, calls, spreadLongWindow, models.OptionContract.BuyPremium)
	shortLegs := filterContracts(stockPrice, calls, spreadShortWindow, models.OptionContract.SellPremium)

	if len(longLegs) == 0 || len(shortLegs) == 0 {
		return nil
	}

	longLeg := longLegs[0]
	shortLeg := shortLegs[0]

	netCost := longLeg.BuyPremium() - shortLeg.SellPremium()
	if netCost <= 0 {
		return nil
	}

	maxProfit := (shortLeg.Strike - longLeg.Strike) - netCost
	returnPct := maxProfit / netCost * 100

	narrative := fmt.Sprintf(
		"BULL CALL SPREAD: BUY 1 %s call at %s (pay %s), SELL 1 call at %s (collect %s), both expiring %s. Net cost: %s. Maximum profit: %s if the stock closes at or above %s. Maximum loss is the net cost.",
		symbol, utils.FormatUSD(longLeg.Strike), utils.FormatUSD(longLeg.BuyPremium()*models.ContractSize),
		utils.FormatUSD(shortLeg.Strike), utils.FormatUSD(shortLeg.SellPremium()*models.ContractSize),
		formatExpiration(expiration), utils.FormatUSD(netCost*models.ContractSize),
		utils.FormatUSD(maxProfit*models.ContractSize), utils.FormatUSD(shortLeg.Strike),
	)

	return buildRecommendation(recommendationInput{
		symbol:       symbol,
		strategy:     models.BullCallSpread,
		stockPrice:   stockPrice,
		strikePrice:  longLeg.Strike,
		shortStrike:  shortLeg.Strike,
		premium:      netCost,
		expiration:   expiration,
		daysToExpiry: daysToExpiry,
		volume:       minInt(longLeg.Volume, shortLeg.Volume),
		openInterest: minInt(longLeg.OpenInterest, shortLeg.OpenInterest),
		ivPct:        (longLeg.ImpliedVolatilityPct() + shortLeg.ImpliedVolatilityPct()) / 2,
		returnPct:    returnPct,
		riskLevel:    models.RiskMedium,
		narrative:    narrative,
	})
}

// assessSellPutRisk grades a short put by implied volatility and how far the
// strike sits below the stock price.
func assessSellPutRisk(ivPct, distancePct float64) models.RiskLevel {
	if ivPct < 30 && distancePct > 7 {
		return models.RiskLow
	}

	if ivPct > 50 || distancePct < 4 {
		return models.RiskHigh
	}

	return models.RiskMedium
}

func assessBuySideRisk(ivPct float64) models.RiskLevel {
	if ivPct < 30 {
		return models.RiskLow
	}

	if ivPct > 50 {
		return models.RiskHigh
	}

	return models.RiskMedium
}

func formatExpiration(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

package models

// OptionContract is one normalized option instance on a chain. Prices are
// per-share; multiply by ContractSize for per-contract dollar values.
type OptionContract struct {
	Strike            float64 `json:"strike"`
	LastPrice         float64 `json:"last_price"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	Volume            int     `json:"volume"`
	OpenInterest      int     `json:"open_interest"`
	ImpliedVolatility float64 `json:"implied_volatility"` // fraction, e.g. 0.30 = 30%
}

const ContractSize = 100

// SellPremium is the per-share premium collected when writing the contract.
// Falls back to the bid when no last trade is available.
func (c OptionContract) SellPremium() float64 {
	if c.LastPrice > 0 {
		return c.LastPrice
	}

	return c.Bid
}

// BuyPremium is the per-share cost of going long the contract. Falls back to
// the ask when no last trade is available.
func (c OptionContract) BuyPremium() float64 {
	if c.LastPrice > 0 {
		return c.LastPrice
	}

	return c.Ask
}

// HasQuote reports whether the contract carries any usable price. Contracts
// without a last trade, bid, or ask are excluded during normalization.
func (c OptionContract) HasQuote() bool {
	return c.LastPrice > 0 || c.Bid > 0 || c.Ask > 0
}

// ImpliedVolatilityPct returns the implied volatility as a percentage,
// defaulting to 30% when the provider omitted it.
func (c OptionContract) ImpliedVolatilityPct() float64 {
	if c.ImpliedVolatility <= 0 {
		return 30.0
	}

	return c.ImpliedVolatility * 100
}

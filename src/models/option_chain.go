package models

import "time"

// OptionChain is a normalized snapshot of the nearest-expiration chain for a
// single underlying. Produced by analysis.NormalizeChain; a chain that made it
// past normalization always satisfies 0 < DaysToExpiry <= 365 and carries at
// least one call or put.
type OptionChain struct {
	Symbol       StockSymbol      `json:"symbol"`
	StockPrice   float64          `json:"stock_price"`
	Expiration   time.Time        `json:"expiration"`
	DaysToExpiry int              `json:"days_to_expiry"`
	Calls        []OptionContract `json:"calls"`
	Puts         []OptionContract `json:"puts"`
	Synthetic    bool             `json:"synthetic"`
}

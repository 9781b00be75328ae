package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/marketlens/options-radar/src/models"
)

const maxDaysToExpiry = 365

// NormalizeChain converts a raw quote + options payload into a canonical
// models.OptionChain for the nearest expiration. The inputs are never
// mutated. A nil or empty payload returns models.DataUnavailableErr; a chain
// with an expiration outside (0, 365] days, or with neither calls nor puts,
// returns models.InvalidChainErr. Both are expected-absence signals the
// ranker turns into a per-symbol skip.
func NormalizeChain(symbol models.StockSymbol, quote *models.StockQuoteDTO, chain *models.OptionChainDTO, now time.Time) (*models.OptionChain, error) {
	if quote == nil {
		return nil, fmt.Errorf("NormalizeChain: %s: missing quote: %w", symbol, models.DataUnavailableErr)
	}

	stockPrice := quote.RegularMarketPrice
	if stockPrice <= 0 {
		stockPrice = quote.PreviousClose
	}

	if stockPrice <= 0 {
		return nil, fmt.Errorf("NormalizeChain: %s: no usable stock price: %w", symbol, models.DataUnavailableErr)
	}

	if chain == nil || len(chain.ExpirationTimestamps) == 0 {
		return nil, fmt.Errorf("NormalizeChain: %s: missing options chain: %w", symbol, models.DataUnavailableErr)
	}

	expiration := time.Unix(chain.ExpirationTimestamps[0], 0).UTC()
	daysToExpiry := int(math.Ceil(expiration.Sub(now).Hours() / 24))

	if daysToExpiry <= 0 || daysToExpiry > maxDaysToExpiry {
		return nil, fmt.Errorf("NormalizeChain: %s: expiration %d days out: %w", symbol, daysToExpiry, models.InvalidChainErr)
	}

	calls := normalizeContracts(chain.Calls)
	puts := normalizeContracts(chain.Puts)

	if len(calls) == 0 && len(puts) == 0 {
		return nil, fmt.Errorf("NormalizeChain: %s: chain has neither calls nor puts: %w", symbol, models.InvalidChainErr)
	}

	return &models.OptionChain{
		Symbol:       symbol,
		StockPrice:   stockPrice,
		Expiration:   expiration,
		DaysToExpiry: daysToExpiry,
		Calls:        calls,
		Puts:         puts,
		Synthetic:    chain.Synthetic || quote.Synthetic,
	}, nil
}

// normalizeContracts copies contracts into the canonical model, dropping any
// contract with no last trade, bid, or ask.
func normalizeContracts(dtos []models.OptionContractDTO) []models.OptionContract {
	contracts := make([]models.OptionContract, 0, len(dtos))
	for _, dto := range dtos {
		c := dto.ToModel()
		if !c.HasQuote() {
			continue
		}

		contracts = append(contracts, c)
	}

	return contracts
}

package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marketlens/options-radar/src/models"
)

func TestNormalizeChain(t *testing.T) {
	symbol := models.StockSymbol("AAPL")
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	quote := func(regular, previous float64) *models.StockQuoteDTO {
		return &models.StockQuoteDTO{Symbol: "AAPL", RegularMarketPrice: regular, PreviousClose: previous}
	}

	chainDTO := func(expiration time.Time) *models.OptionChainDTO {
		return &models.OptionChainDTO{
			Calls:                []models.OptionContractDTO{{Strike: 210, LastPrice: 2.5, Volume: 100}},
			Puts:                 []models.OptionContractDTO{{Strike: 190, LastPrice: 3.0, Volume: 150}},
			ExpirationTimestamps: []int64{expiration.Unix()},
		}
	}

	t.Run("nearest expiration is normalized", func(t *testing.T) {
		expiration := now.AddDate(0, 0, 30)

		chain, err := NormalizeChain(symbol, quote(200, 198), chainDTO(expiration), now)

		assert.NoError(t, err)
		assert.Equal(t, symbol, chain.Symbol)
		assert.Equal(t, 200.0, chain.StockPrice)
		assert.Equal(t, 30, chain.DaysToExpiry)
		assert.Len(t, chain.Calls, 1)
		assert.Len(t, chain.Puts, 1)
	})

	t.Run("falls back to previous close when market price is missing", func(t *testing.T) {
		chain, err := NormalizeChain(symbol, quote(0, 198.5), chainDTO(now.AddDate(0, 0, 14)), now)

		assert.NoError(t, err)
		assert.Equal(t, 198.5, chain.StockPrice)
	})

	t.Run("no usable price is data unavailable", func(t *testing.T) {
		_, err := NormalizeChain(symbol, quote(0, 0), chainDTO(now.AddDate(0, 0, 14)), now)

		assert.True(t, errors.Is(err, models.DataUnavailableErr))
	})

	t.Run("nil quote is data unavailable", func(t *testing.T) {
		_, err := NormalizeChain(symbol, nil, chainDTO(now.AddDate(0, 0, 14)), now)

		assert.True(t, errors.Is(err, models.DataUnavailableErr))
	})

	t.Run("missing chain is data unavailable", func(t *testing.T) {
		_, err := NormalizeChain(symbol, quote(200, 198), nil, now)

		assert.True(t, errors.Is(err, models.DataUnavailableErr))

		_, err = NormalizeChain(symbol, quote(200, 198), &models.OptionChainDTO{}, now)

		assert.True(t, errors.Is(err, models.DataUnavailableErr))
	})

	t.Run("expired chain is rejected", func(t *testing.T) {
		_, err := NormalizeChain(symbol, quote(200, 198), chainDTO(now.AddDate(0, 0, -1)), now)

		assert.True(t, errors.Is(err, models.InvalidChainErr))
	})

	t.Run("expiration beyond a year is rejected", func(t *testing.T) {
		_, err := NormalizeChain(symbol, quote(200, 198), chainDTO(now.AddDate(0, 0, 400)), now)

		assert.True(t, errors.Is(err, models.InvalidChainErr))
	})

	t.Run("quoteless contracts are dropped", func(t *testing.T) {
		dto := chainDTO(now.AddDate(0, 0, 30))
		dto.Calls = append(dto.Calls, models.OptionContractDTO{Strike: 220, Volume: 500})

		chain, err := NormalizeChain(symbol, quote(200, 198), dto, now)

		assert.NoError(t, err)
		assert.Len(t, chain.Calls, 1)
		assert.Equal(t, 210.0, chain.Calls[0].Strike)
	})

	t.Run("chain with no priced contracts is invalid", func(t *testing.T) {
		dto := &models.OptionChainDTO{
			Calls:                []models.OptionContractDTO{{Strike: 210, Volume: 500}},
			ExpirationTimestamps: []int64{now.AddDate(0, 0, 30).Unix()},
		}

		_, err := NormalizeChain(symbol, quote(200, 198), dto, now)

		assert.True(t, errors.Is(err, models.InvalidChainErr))
	})

	t.Run("same-day expiration still counts as one day", func(t *testing.T) {
		chain, err := NormalizeChain(symbol, quote(200, 198), chainDTO(now.Add(6*time.Hour)), now)

		assert.NoError(t, err)
		assert.Equal(t, 1, chain.DaysToExpiry)
	})
}

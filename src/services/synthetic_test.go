package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyntheticDataSource(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("every payload is labeled synthetic", func(t *testing.T) {
		source := NewSyntheticDataSource(1, clock)

		quote, err := source.FetchStockQuote(context.Background(), "AAPL")
		assert.NoError(t, err)
		assert.True(t, quote.Synthetic)

		chain, err := source.FetchOptionsChain(context.Background(), "AAPL")
		assert.NoError(t, err)
		assert.True(t, chain.Synthetic)
	})

	t.Run("known tickers use reference prices", func(t *testing.T) {
		source := NewSyntheticDataSource(1, clock)

		quote, err := source.FetchStockQuote(context.Background(), "AAPL")

		assert.NoError(t, err)
		assert.Equal(t, 258.45, quote.RegularMarketPrice)
	})

	t.Run("unknown tickers get a stable price", func(t *testing.T) {
		source := NewSyntheticDataSource(1, clock)

		first, err := source.FetchStockQuote(context.Background(), "ZZZZ")
		assert.NoError(t, err)

		second, err := source.FetchStockQuote(context.Background(), "ZZZZ")
		assert.NoError(t, err)

		assert.Equal(t, first.RegularMarketPrice, second.RegularMarketPrice)
		assert.Greater(t, first.RegularMarketPrice, 0.0)
	})

	t.Run("chain brackets the stock price", func(t *testing.T) {
		source := NewSyntheticDataSource(1, clock)

		chain, err := source.FetchOptionsChain(context.Background(), "AAPL")

		assert.NoError(t, err)
		assert.Len(t, chain.Calls, 10)
		assert.Len(t, chain.Puts, 10)

		for _, call := range chain.Calls {
			assert.GreaterOrEqual(t, call.Strike, 258.45)
		}

		for _, put := range chain.Puts {
			assert.Less(t, put.Strike, 258.45)
		}
	})

	t.Run("chain expires thirty days out", func(t *testing.T) {
		source := NewSyntheticDataSource(1, clock)

		chain, err := source.FetchOptionsChain(context.Background(), "AAPL")

		assert.NoError(t, err)
		assert.Len(t, chain.ExpirationTimestamps, 1)
		assert.Equal(t, now.Add(30*24*time.Hour).Unix(), chain.ExpirationTimestamps[0])
	})

	t.Run("chain survives normalization and analysis", func(t *testing.T) {
		source := NewSyntheticDataSource(1, clock)

		chain, err := source.FetchOptionsChain(context.Background(), "AAPL")
		assert.NoError(t, err)

		for _, c := range chain.Calls {
			model := c.ToModel()
			assert.True(t, model.HasQuote())
			assert.Greater(t, model.Volume, 0)
		}
	})
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategy(t *testing.T) {
	t.Run("presentation order is stable", func(t *testing.T) {
		assert.Equal(t, []Strategy{SellPut, SellCall, BuyCall, BuyPut, CoveredCall, BullCallSpread}, Strategies())
	})

	t.Run("validate accepts known strategies", func(t *testing.T) {
		for _, s := range Strategies() {
			assert.NoError(t, s.Validate())
		}

		assert.Error(t, Strategy("Iron Condor").Validate())
	})

	t.Run("slug round-trips through parse", func(t *testing.T) {
		for _, s := range Strategies() {
			parsed, err := ParseStrategy(s.Slug())
			assert.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("parse accepts display names", func(t *testing.T) {
		parsed, err := ParseStrategy("Bull Call Spread")

		assert.NoError(t, err)
		assert.Equal(t, BullCallSpread, parsed)
	})

	t.Run("parse rejects unknown input", func(t *testing.T) {
		_, err := ParseStrategy("iron-condor")

		assert.Error(t, err)
	})
}

func TestOptionContract(t *testing.T) {
	t.Run("sell premium prefers last trade then bid", func(t *testing.T) {
		assert.Equal(t, 3.0, OptionContract{LastPrice: 3.0, Bid: 2.8}.SellPremium())
		assert.Equal(t, 2.8, OptionContract{Bid: 2.8}.SellPremium())
	})

	t.Run("buy premium prefers last trade then ask", func(t *testing.T) {
		assert.Equal(t, 3.0, OptionContract{LastPrice: 3.0, Ask: 3.2}.BuyPremium())
		assert.Equal(t, 3.2, OptionContract{Ask: 3.2}.BuyPremium())
	})

	t.Run("implied volatility defaults to thirty percent", func(t *testing.T) {
		assert.Equal(t, 30.0, OptionContract{}.ImpliedVolatilityPct())
		assert.Equal(t, 45.0, OptionContract{ImpliedVolatility: 0.45}.ImpliedVolatilityPct())
	})

	t.Run("quoteless contracts are detected", func(t *testing.T) {
		assert.False(t, OptionContract{Strike: 190, Volume: 500}.HasQuote())
		assert.True(t, OptionContract{Strike: 190, Ask: 0.05}.HasQuote())
	})
}

func TestStockSymbol(t *testing.T) {
	t.Run("normalizes to upper case", func(t *testing.T) {
		assert.Equal(t, "AAPL", NewStockSymbol("aapl").String())
	})

	t.Run("marshals as the normalized form", func(t *testing.T) {
		data, err := StockSymbol("tsla").MarshalJSON()

		assert.NoError(t, err)
		assert.Equal(t, `"TSLA"`, string(data))
	})
}

package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marketlens/options-radar/src/models"
)

func screenerPayload(quotes string) string {
	return fmt.Sprintf(`{"finance":{"result":[{"quotes":[%s]}]}}`, quotes)
}

func newTestScreener(url string, ttl time.Duration, clock func() time.Time) *Screener {
	s := NewScreener(ttl, clock)
	s.URL = url
	return s
}

func TestScreenerActiveStocks(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	t.Run("filters out indices, thin volume, and penny prices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, screenerPayload(`
				{"symbol":"AAPL","regularMarketPrice":258.45,"regularMarketVolume":50000000},
				{"symbol":"^GSPC","regularMarketPrice":6000,"regularMarketVolume":90000000},
				{"symbol":"EURUSD=X","regularMarketPrice":1.08,"regularMarketVolume":90000000},
				{"symbol":"THIN","regularMarketPrice":42.00,"regularMarketVolume":500000},
				{"symbol":"PNNY","regularMarketPrice":2.15,"regularMarketVolume":9000000},
				{"symbol":"msft","regularMarketPrice":421.32,"regularMarketVolume":22000000}
			`))
		}))
		defer server.Close()

		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return now })

		symbols, _, err := screener.ActiveStocks(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []models.StockSymbol{"AAPL", "MSFT"}, symbols)
	})

	t.Run("cache satisfies calls inside the TTL", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, screenerPayload(`{"symbol":"AAPL","regularMarketPrice":258.45,"regularMarketVolume":50000000}`))
		}))
		defer server.Close()

		current := now
		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return current })

		first, expires, err := screener.ActiveStocks(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), expires)

		current = now.Add(30 * time.Minute)
		second, _, err := screener.ActiveStocks(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)
	})

	t.Run("expired cache refetches", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, screenerPayload(`{"symbol":"AAPL","regularMarketPrice":258.45,"regularMarketVolume":50000000}`))
		}))
		defer server.Close()

		current := now
		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return current })

		_, _, err := screener.ActiveStocks(context.Background())
		assert.NoError(t, err)

		current = now.Add(61 * time.Minute)
		_, _, err = screener.ActiveStocks(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("clear cache forces a refetch", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, screenerPayload(`{"symbol":"AAPL","regularMarketPrice":258.45,"regularMarketVolume":50000000}`))
		}))
		defer server.Close()

		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return now })

		_, _, err := screener.ActiveStocks(context.Background())
		assert.NoError(t, err)

		screener.ClearCache()

		_, _, err = screener.ActiveStocks(context.Background())
		assert.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("server failure falls back to the static universe", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return now })

		symbols, _, err := screener.ActiveStocks(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, FallbackUniverse(), symbols)
	})

	t.Run("empty screener result falls back to the static universe", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"finance":{"result":[]}}`)
		}))
		defer server.Close()

		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return now })

		symbols, _, err := screener.ActiveStocks(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, FallbackUniverse(), symbols)
	})

	t.Run("caps the universe at fifty symbols", func(t *testing.T) {
		quotes := ""
		for i := 0; i < 80; i++ {
			if i > 0 {
				quotes += ","
			}
			quotes += fmt.Sprintf(`{"symbol":"SYM%d","regularMarketPrice":50,"regularMarketVolume":9000000}`, i)
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, screenerPayload(quotes))
		}))
		defer server.Close()

		screener := newTestScreener(server.URL, time.Hour, func() time.Time { return now })

		symbols, _, err := screener.ActiveStocks(context.Background())

		assert.NoError(t, err)
		assert.Len(t, symbols, 50)
	})
}

func TestFallbackUniverse(t *testing.T) {
	symbols := FallbackUniverse()

	assert.NotEmpty(t, symbols)
	assert.Contains(t, symbols, models.StockSymbol("AAPL"))

	seen := make(map[models.StockSymbol]bool)
	for _, s := range symbols {
		assert.False(t, seen[s], "duplicate symbol %s", s)
		seen[s] = true
	}
}

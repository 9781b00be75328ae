package services

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/utils"
)

const defaultScreenerURL = "https://query1.finance.yahoo.com/v1/finance/screener/predefined/saved?formatted=true&scrIds=most_actives&count=100"

const (
	screenerMinVolume = 1_000_000
	screenerMinPrice  = 5.0
	screenerMaxCount  = 50
)

// Screener supplies the symbol universe: most actively traded optionable
// stocks, cached for a TTL, with static fallbacks when the live screener is
// unavailable. The clock is injected so cache expiry is testable.
type Screener struct {
	URL    string
	Client *http.Client

	ttl   time.Duration
	clock func() time.Time

	mu        sync.Mutex
	cached    []models.StockSymbol
	expiresAt time.Time
}

func NewScreener(ttl time.Duration, clock func() time.Time) *Screener {
	if clock == nil {
		clock = time.Now
	}

	return &Screener{
		URL:    defaultScreenerURL,
		Client: &http.Client{Timeout: 10 * time.Second},
		ttl:    ttl,
		clock:  clock,
	}
}

// ActiveStocks returns the current universe and when the cached copy
// expires. The live screener failing is not an error: the fallback lists
// keep the scan running.
func (s *Screener) ActiveStocks(ctx context.Context) ([]models.StockSymbol, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if s.cached != nil && now.Before(s.expiresAt) {
		log.Debug("Screener.ActiveStocks: using cached symbols")
		return s.cached, s.expiresAt, nil
	}

	symbols, err := s.fetchMostActives(ctx)
	if err != nil {
		log.Warnf("Screener.ActiveStocks: live screener unavailable, using fallback universe: %v", err)
		symbols = FallbackUniverse()
	}

	s.cached = symbols
	s.expiresAt = now.Add(s.ttl)

	return s.cached, s.expiresAt, nil
}

// ClearCache forces the next ActiveStocks call to refetch.
func (s *Screener) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	s.expiresAt = time.Time{}
}

func (s *Screener) fetchMostActives(ctx context.Context) ([]models.StockSymbol, error) {
	var dto models.YahooScreenerResponseDTO
	if err := utils.GetJSON(ctx, s.Client, s.URL, &dto); err != nil {
		return nil, err
	}

	if len(dto.Finance.Result) == 0 {
		return nil, models.DataUnavailableErr
	}

	var symbols []models.StockSymbol
	for _, quote := range dto.Finance.Result[0].Quotes {
		if !isScreenableQuote(quote) {
			continue
		}

		symbols = append(symbols, models.NewStockSymbol(quote.Symbol))
		if len(symbols) == screenerMaxCount {
			break
		}
	}

	if len(symbols) == 0 {
		return nil, models.DataUnavailableErr
	}

	log.Infof("Screener.fetchMostActives: fetched %d active stocks", len(symbols))
	return symbols, nil
}

// isScreenableQuote keeps liquid common stocks: no indices or forex symbols,
// over a million shares traded, and a non-penny price.
func isScreenableQuote(q models.YahooScreenerQuoteDTO) bool {
	if q.Symbol == "" || strings.Contains(q.Symbol, "^") || strings.Contains(q.Symbol, "=") {
		return false
	}

	return q.RegularMarketVolume > screenerMinVolume && q.RegularMarketPrice > screenerMinPrice
}

// FallbackUniverse is the S&P-100 style list of liquid optionable names used
// when the live screener is down.
func FallbackUniverse() []models.StockSymbol {
	raw := []string{
		// Technology
		"AAPL", "MSFT", "GOOGL", "AMZN", "META", "NVDA", "TSLA", "AVGO", "ORCL", "ADBE", "CRM", "AMD", "INTC", "QCOM", "NFLX",
		// Financials
		"JPM", "BAC", "WFC", "GS", "MS", "C", "BLK", "SCHW", "AXP", "SPGI",
		// Healthcare
		"UNH", "JNJ", "LLY", "PFE", "ABBV", "TMO", "MRK", "ABT", "DHR", "CVS",
		// Consumer
		"WMT", "HD", "DIS", "MCD", "NKE", "SBUX", "TGT", "LOW", "COST", "PG",
		// Energy
		"XOM", "CVX", "COP", "SLB", "EOG",
		// Industrials
		"BA", "CAT", "UNP", "HON", "GE", "RTX",
	}

	symbols := make([]models.StockSymbol, 0, len(raw))
	for _, s := range raw {
		symbols = append(symbols, models.StockSymbol(s))
	}

	return symbols
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/marketlens/options-radar/src/analysis"
	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/services"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// Scanner is the slice of the ranker the handlers need.
type Scanner interface {
	Rank(ctx context.Context, symbols []models.StockSymbol, params analysis.RankParams) (*analysis.ScanResult, error)
}

// UniverseProvider supplies the symbol list to scan.
type UniverseProvider interface {
	ActiveStocks(ctx context.Context) ([]models.StockSymbol, time.Time, error)
}

type RecommendationsHandler struct {
	Scanner  Scanner
	Universe UniverseProvider
	Params   analysis.RankParams
}

type recommendationsQuery struct {
	Mode    string   `schema:"mode"`
	TopK    int      `schema:"top"`
	Symbols []string `schema:"symbols"`
}

type recommendationsResponse struct {
	MarketStatus    models.MarketStatus     `json:"market_status"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Skipped         int                     `json:"skipped"`
	UsingFallback   bool                    `json:"using_fallback"`
	Summary         analysis.ScanSummary    `json:"summary"`
}

// Recommendations handles GET /api/recommendations. Every call recomputes
// from fresh fetches; a superseded request is cancelled through the request
// context.
func (h *RecommendationsHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var query recommendationsQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	params := h.Params
	if query.Mode != "" {
		params.Mode = analysis.RankMode(query.Mode)
	}

	if query.TopK > 0 {
		params.TopK = query.TopK
	}

	symbols, err := h.resolveSymbols(r.Context(), query.Symbols)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	result, err := h.Scanner.Rank(r.Context(), symbols, params)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	respondJSON(w, http.StatusOK, recommendationsResponse{
		MarketStatus:    services.CurrentMarketStatus(nil),
		Recommendations: result.Recommendations,
		Skipped:         result.Skipped,
		UsingFallback:   result.UsingFallback,
		Summary:         result.Summary,
	})
}

// RecommendationsByStrategy handles GET /api/recommendations/{strategy},
// returning only the named strategy's group.
func (h *RecommendationsHandler) RecommendationsByStrategy(w http.ResponseWriter, r *http.Request) {
	strategy, err := models.ParseStrategy(mux.Vars(r)["strategy"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	params := h.Params
	params.Mode = analysis.TopPerStrategy

	symbols, err := h.resolveSymbols(r.Context(), nil)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	result, err := h.Scanner.Rank(r.Context(), symbols, params)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	filtered := make([]models.Recommendation, 0)
	for _, rec := range result.Recommendations {
		if rec.Strategy == strategy {
			filtered = append(filtered, rec)
		}
	}

	for i := range filtered {
		filtered[i].Rank = i + 1
	}

	respondJSON(w, http.StatusOK, recommendationsResponse{
		MarketStatus:    services.CurrentMarketStatus(nil),
		Recommendations: filtered,
		Skipped:         result.Skipped,
		UsingFallback:   result.UsingFallback,
		Summary:         result.Summary,
	})
}

// UniverseHandler handles GET /api/universe.
func (h *RecommendationsHandler) UniverseHandler(w http.ResponseWriter, r *http.Request) {
	symbols, expiresAt, err := h.Universe.ActiveStocks(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbols":    symbols,
		"expires_at": expiresAt,
	})
}

func (h *RecommendationsHandler) resolveSymbols(ctx context.Context, requested []string) ([]models.StockSymbol, error) {
	if len(requested) > 0 {
		symbols := make([]models.StockSymbol, 0, len(requested))
		for _, s := range requested {
			symbols = append(symbols, models.NewStockSymbol(s))
		}

		return symbols, nil
	}

	symbols, _, err := h.Universe.ActiveStocks(ctx)
	return symbols, err
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("respondJSON: failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	log.Warnf("handler: %v", err)
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

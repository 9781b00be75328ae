package analysis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/marketlens/options-radar/src/eventpubsub"
	"github.com/marketlens/options-radar/src/models"
)

type RankMode string

const (
	// BestPerSymbol keeps only the single highest-scored candidate per
	// symbol, for "top N symbols, one strategy each" views.
	BestPerSymbol RankMode = "best-per-symbol"

	// TopPerStrategy keeps the top K candidates within each strategy group.
	TopPerStrategy RankMode = "top-per-strategy"
)

type RankParams struct {
	Mode RankMode

	// TopK bounds each strategy group in TopPerStrategy mode. Defaults to 5.
	TopK int

	// BatchSize bounds concurrent in-flight symbol fetches. Defaults to 5.
	BatchSize int

	// BatchDelay is the pause between batches, a politeness policy toward
	// the upstream data source. Defaults to 200ms.
	BatchDelay time.Duration

	// FetchTimeout bounds each per-symbol fetch; a timeout is treated the
	// same as a rejected chain. Defaults to 10s.
	FetchTimeout time.Duration

	// MaxCandidates stops the scan early once enough candidates have been
	// collected. Zero means no early stop.
	MaxCandidates int

	Weights models.ScoringWeights
}

func (p *RankParams) applyDefaults() {
	if p.Mode == "" {
		p.Mode = TopPerStrategy
	}

	if p.TopK <= 0 {
		p.TopK = 5
	}

	if p.BatchSize <= 0 {
		p.BatchSize = 5
	}

	if p.BatchDelay <= 0 {
		p.BatchDelay = 200 * time.Millisecond
	}

	if p.FetchTimeout <= 0 {
		p.FetchTimeout = 10 * time.Second
	}

	if p.Weights.ReturnWeight == 0 {
		p.Weights = models.DefaultScoringWeights()
	}
}

// ScanResult is the outcome of one ranking pass. Recommendations are ordered
// by score descending within the active grouping mode, with Rank assigned
// 1..N.
type ScanResult struct {
	ScanID          uuid.UUID               `json:"scan_id"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Skipped         int                     `json:"skipped"`

	// UsingFallback is set when every live fetch failed. If a synthetic
	// source was injected the recommendations are fabricated and each one
	// carries Synthetic: true; callers must not present them as live data.
	UsingFallback bool `json:"using_fallback"`

	Summary     ScanSummary `json:"summary"`
	CompletedAt time.Time   `json:"completed_at"`
}

// Ranker fans out fetch-and-analyze tasks over a symbol universe and ranks
// the surviving candidates. Stateless between calls: every scan recomputes
// from fresh fetches.
type Ranker struct {
	fetcher models.MarketDataFetcher

	// synthetic, when non-nil, is the clearly-labeled fallback source used
	// only after every live symbol has failed.
	synthetic models.MarketDataFetcher

	tracer trace.Tracer
	clock  func() time.Time
}

func NewRanker(fetcher models.MarketDataFetcher) *Ranker {
	return &Ranker{
		fetcher: fetcher,
		tracer:  otel.Tracer("Ranker"),
		clock:   time.Now,
	}
}

// WithSyntheticFallback injects the labeled synthetic source.
func (r *Ranker) WithSyntheticFallback(source models.MarketDataFetcher) *Ranker {
	r.synthetic = source
	return r
}

// WithClock overrides the time source, for tests.
func (r *Ranker) WithClock(clock func() time.Time) *Ranker {
	r.clock = clock
	return r
}

// Rank runs the full pipeline: fetch, normalize, analyze, score, select,
// order. Per-symbol failures are isolated; only context cancellation aborts
// the whole scan.
func (r *Ranker) Rank(ctx context.Context, symbols []models.StockSymbol, params RankParams) (*ScanResult, error) {
	params.applyDefaults()

	ctx, span := r.tracer.Start(ctx, "Rank")
	defer span.End()

	scanID := uuid.New()
	eventpubsub.Publish(eventpubsub.ScanStartedEvent, eventpubsub.ScanStarted{ScanID: scanID, Symbols: len(symbols)})

	candidates, skipped, err := r.collect(ctx, scanID, symbols, params)
	if err != nil {
		return nil, err
	}

	// Every symbol failing is the fallback/demo case; a scan that processed
	// symbols but found no viable trades is a legitimate empty result.
	usingFallback := false
	if len(symbols) > 0 && skipped == len(symbols) {
		usingFallback = true

		if r.synthetic != nil {
			log.Warn("Rank: all live fetches failed, falling back to synthetic data")
			candidates = r.syntheticPass(ctx, symbols, params)
		}
	}

	scorer := NewScorer(params.Weights)
	for i := range candidates {
		candidates[i].Score = scorer.Score(&candidates[i])
	}

	selected := selectCandidates(candidates, params)
	for i := range selected {
		selected[i].Rank = i + 1
	}

	result := &ScanResult{
		ScanID:          scanID,
		Recommendations: selected,
		Skipped:         skipped,
		UsingFallback:   usingFallback,
		Summary:         summarize(selected),
		CompletedAt:     r.clock(),
	}

	eventpubsub.Publish(eventpubsub.ScanCompletedEvent, eventpubsub.ScanCompleted{
		ScanID:          scanID,
		Recommendations: len(selected),
		Skipped:         skipped,
		UsingFallback:   usingFallback,
	})

	return result, nil
}

// collect fans out over the universe in bounded batches. Each task owns its
// own result slot, so no locking is needed beyond the WaitGroup join.
func (r *Ranker) collect(ctx context.Context, scanID uuid.UUID, symbols []models.StockSymbol, params RankParams) ([]models.Recommendation, int, error) {
	var candidates []models.Recommendation
	skipped := 0

	for start := 0; start < len(symbols); start += params.BatchSize {
		if err := ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("Ranker.collect: scan superseded: %w", err)
		}

		end := start + params.BatchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		batch := symbols[start:end]
		slots := make([][]models.Recommendation, len(batch))

		var wg sync.WaitGroup
		for i, symbol := range batch {
			wg.Add(1)

			go func(slot int, symbol models.StockSymbol) {
				defer wg.Done()

				recs, err := r.processSymbol(ctx, r.fetcher, symbol, params)
				if err != nil {
					log.Warnf("Ranker.collect: skipping %s: %v", symbol, err)
					eventpubsub.Publish(eventpubsub.SymbolSkippedEvent, eventpubsub.SymbolSkipped{
						ScanID: scanID,
						Symbol: symbol,
						Reason: err.Error(),
					})
					return
				}

				slots[slot] = recs
			}(i, symbol)
		}

		wg.Wait()

		for _, recs := range slots {
			if recs == nil {
				skipped++
				continue
			}

			candidates = append(candidates, recs...)
		}

		if params.MaxCandidates > 0 && len(candidates) >= params.MaxCandidates {
			break
		}

		if end < len(symbols) {
			time.Sleep(params.BatchDelay)
		}
	}

	return candidates, skipped, nil
}

// processSymbol is one independent fetch-and-analyze task. All failure modes
// reduce to an error return; the caller decides that means a skip.
func (r *Ranker) processSymbol(ctx context.Context, fetcher models.MarketDataFetcher, symbol models.StockSymbol, params RankParams) ([]models.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, params.FetchTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("processSymbol %s", symbol))
	defer span.End()

	quote, err := fetcher.FetchStockQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("processSymbol: %s: quote fetch failed: %w", symbol, err)
	}

	chainDTO, err := fetcher.FetchOptionsChain(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("processSymbol: %s: chain fetch failed: %w", symbol, err)
	}

	chain, err := NormalizeChain(symbol, quote, chainDTO, r.clock())
	if err != nil {
		return nil, err
	}

	recs := AnalyzeChain(chain)
	if recs == nil {
		// No viable candidate on any strategy is a normal outcome, not a
		// skip; return an empty slice so the slot registers as processed.
		recs = []models.Recommendation{}
	}

	return recs, nil
}

// syntheticPass reruns the pipeline against the injected synthetic source.
// Errors here only log; fabricated data is best-effort.
func (r *Ranker) syntheticPass(ctx context.Context, symbols []models.StockSymbol, params RankParams) []models.Recommendation {
	var candidates []models.Recommendation
	for _, symbol := range symbols {
		recs, err := r.processSymbol(ctx, r.synthetic, symbol, params)
		if err != nil {
			log.Warnf("Ranker.syntheticPass: %s: %v", symbol, err)
			continue
		}

		candidates = append(candidates, recs...)

		if params.MaxCandidates > 0 && len(candidates) >= params.MaxCandidates {
			break
		}
	}

	return candidates
}

// selectCandidates applies the active grouping mode and final ordering.
// Sorts are stable so tied scores keep a deterministic relative order across
// repeated runs on identical input.
func selectCandidates(candidates []models.Recommendation, params RankParams) []models.Recommendation {
	switch params.Mode {
	case BestPerSymbol:
		bestBySymbol := make(map[models.StockSymbol]models.Recommendation)
		var order []models.StockSymbol

		for _, rec := range candidates {
			best, seen := bestBySymbol[rec.Symbol]
			if !seen {
				order = append(order, rec.Symbol)
			}

			if !seen || rec.Score > best.Score {
				bestBySymbol[rec.Symbol] = rec
			}
		}

		selected := make([]models.Recommendation, 0, len(order))
		for _, symbol := range order {
			selected = append(selected, bestBySymbol[symbol])
		}

		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Score > selected[j].Score
		})

		return selected

	default: // TopPerStrategy
		byStrategy := make(map[models.Strategy][]models.Recommendation)
		for _, rec := range candidates {
			byStrategy[rec.Strategy] = append(byStrategy[rec.Strategy], rec)
		}

		var selected []models.Recommendation
		for _, strategy := range models.Strategies() {
			group := byStrategy[strategy]
			sort.SliceStable(group, func(i, j int) bool {
				return group[i].Score > group[j].Score
			})

			if len(group) > params.TopK {
				group = group[:params.TopK]
			}

			selected = append(selected, group...)
		}

		return selected
	}
}

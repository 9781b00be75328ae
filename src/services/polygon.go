package services

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	polygonmodels "github.com/polygon-io/client-go/rest/models"

	"github.com/marketlens/options-radar/src/models"
)

// PolygonFetcher is an alternate market data source for deployments with a
// Polygon API key. Quotes come from the previous-close aggregate; the chain
// comes from the options chain snapshot for the nearest expiration.
type PolygonFetcher struct {
	Client *polygon.Client
	clock  func() time.Time
}

func NewPolygonFetcher(apiKey string) *PolygonFetcher {
	return &PolygonFetcher{
		Client: polygon.New(apiKey),
		clock:  time.Now,
	}
}

func (p *PolygonFetcher) FetchStockQuote(ctx context.Context, symbol models.StockSymbol) (*models.StockQuoteDTO, error) {
	params := polygonmodels.GetPreviousCloseAggParams{
		Ticker: symbol.String(),
	}.WithAdjusted(true)

	res, err := p.Client.GetPreviousCloseAgg(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("PolygonFetcher.FetchStockQuote: %s: %w", symbol, err)
	}

	if len(res.Results) == 0 {
		return nil, fmt.Errorf("PolygonFetcher.FetchStockQuote: %s: no aggregates: %w", symbol, models.DataUnavailableErr)
	}

	bar := res.Results[0]

	return &models.StockQuoteDTO{
		Symbol:              symbol.String(),
		RegularMarketPrice:  bar.Close,
		PreviousClose:       bar.Close,
		RegularMarketVolume: int64(bar.Volume),
	}, nil
}

func (p *PolygonFetcher) FetchOptionsChain(ctx context.Context, symbol models.StockSymbol) (*models.OptionChainDTO, error) {
	params := &polygonmodels.ListOptionsChainParams{
		UnderlyingAsset: symbol.String(),
	}

	iter := p.Client.ListOptionsChainSnapshot(ctx, params)

	type legs struct {
		calls []models.OptionContractDTO
		puts  []models.OptionContractDTO
	}

	byExpiration := make(map[time.Time]*legs)
	var nearest time.Time

	for iter.Next() {
		item := iter.Item()

		expiration := time.Time(item.Details.ExpirationDate)
		if expiration.Before(p.clock()) {
			continue
		}

		if nearest.IsZero() || expiration.Before(nearest) {
			nearest = expiration
		}

		group, ok := byExpiration[expiration]
		if !ok {
			group = &legs{}
			byExpiration[expiration] = group
		}

		dto := models.OptionContractDTO{
			Strike:            item.Details.StrikePrice,
			LastPrice:         item.Day.Close,
			Bid:               item.LastQuote.Bid,
			Ask:               item.LastQuote.Ask,
			Volume:            int(item.Day.Volume),
			OpenInterest:      int(item.OpenInterest),
			ImpliedVolatility: item.ImpliedVolatility,
		}

		switch models.OptionType(item.Details.ContractType) {
		case models.Call:
			group.calls = append(group.calls, dto)
		case models.Put:
			group.puts = append(group.puts, dto)
		}
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("PolygonFetcher.FetchOptionsChain: %s: %w", symbol, err)
	}

	if nearest.IsZero() {
		return nil, fmt.Errorf("PolygonFetcher.FetchOptionsChain: %s: no upcoming expirations: %w", symbol, models.DataUnavailableErr)
	}

	group := byExpiration[nearest]

	return &models.OptionChainDTO{
		Calls:                group.calls,
		Puts:                 group.puts,
		ExpirationTimestamps: []int64{nearest.Unix()},
	}, nil
}

package models

import "context"

// MarketDataFetcher is the external data source the ranker fans out against.
// Implementations: services.YahooClient (primary), services.PolygonFetcher
// (alternate), services.SyntheticDataSource (labeled fallback).
type MarketDataFetcher interface {
	FetchStockQuote(ctx context.Context, symbol StockSymbol) (*StockQuoteDTO, error)
	FetchOptionsChain(ctx context.Context, symbol StockSymbol) (*OptionChainDTO, error)
}

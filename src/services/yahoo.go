package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/marketlens/options-radar/src/models"
	"github.com/marketlens/options-radar/src/utils"
)

const (
	defaultQuoteURLTemplate   = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d"
	defaultOptionsURLTemplate = "https://query2.finance.yahoo.com/v7/finance/options/%s"
)

// YahooClient is the primary market data source. It speaks the public
// Yahoo-style finance JSON endpoints.
type YahooClient struct {
	QuoteURLTemplate   string
	OptionsURLTemplate string
	Client             *http.Client
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		QuoteURLTemplate:   defaultQuoteURLTemplate,
		OptionsURLTemplate: defaultOptionsURLTemplate,
		Client:             &http.Client{Timeout: 10 * time.Second},
	}
}

func (y *YahooClient) FetchStockQuote(ctx context.Context, symbol models.StockSymbol) (*models.StockQuoteDTO, error) {
	url := fmt.Sprintf(y.QuoteURLTemplate, symbol)

	var dto models.YahooChartResponseDTO
	if err := utils.GetJSON(ctx, y.Client, url, &dto); err != nil {
		return nil, fmt.Errorf("YahooClient.FetchStockQuote: %s: %w", symbol, err)
	}

	quote := dto.ToQuote()
	if quote == nil {
		return nil, fmt.Errorf("YahooClient.FetchStockQuote: %s: empty chart result: %w", symbol, models.DataUnavailableErr)
	}

	return quote, nil
}

func (y *YahooClient) FetchOptionsChain(ctx context.Context, symbol models.StockSymbol) (*models.OptionChainDTO, error) {
	url := fmt.Sprintf(y.OptionsURLTemplate, symbol)

	var dto models.YahooOptionsResponseDTO
	if err := utils.GetJSON(ctx, y.Client, url, &dto); err != nil {
		return nil, fmt.Errorf("YahooClient.FetchOptionsChain: %s: %w", symbol, err)
	}

	chain := dto.ToChain()
	if chain == nil {
		return nil, fmt.Errorf("YahooClient.FetchOptionsChain: %s: empty option chain result: %w", symbol, models.DataUnavailableErr)
	}

	return chain, nil
}

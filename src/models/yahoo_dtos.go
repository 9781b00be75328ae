package models

// Envelope shapes for the Yahoo-style finance endpoints.

type YahooChartResponseDTO struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol              string  `json:"symbol"`
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				PreviousClose       float64 `json:"previousClose"`
				RegularMarketVolume int64   `json:"regularMarketVolume"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (dto *YahooChartResponseDTO) ToQuote() *StockQuoteDTO {
	if len(dto.Chart.Result) == 0 {
		return nil
	}

	meta := dto.Chart.Result[0].Meta

	previousClose := meta.ChartPreviousClose
	if previousClose == 0 {
		previousClose = meta.PreviousClose
	}

	return &StockQuoteDTO{
		Symbol:              meta.Symbol,
		RegularMarketPrice:  meta.RegularMarketPrice,
		PreviousClose:       previousClose,
		RegularMarketVolume: meta.RegularMarketVolume,
	}
}

type YahooOptionsResponseDTO struct {
	OptionChain struct {
		Result []struct {
			UnderlyingSymbol string  `json:"underlyingSymbol"`
			ExpirationDates  []int64 `json:"expirationDates"`
			Options          []struct {
				Calls []OptionContractDTO `json:"calls"`
				Puts  []OptionContractDTO `json:"puts"`
			} `json:"options"`
		} `json:"result"`
	} `json:"optionChain"`
}

func (dto *YahooOptionsResponseDTO) ToChain() *OptionChainDTO {
	if len(dto.OptionChain.Result) == 0 {
		return nil
	}

	result := dto.OptionChain.Result[0]
	if len(result.Options) == 0 {
		return nil
	}

	return &OptionChainDTO{
		Calls:                result.Options[0].Calls,
		Puts:                 result.Options[0].Puts,
		ExpirationTimestamps: result.ExpirationDates,
	}
}

type YahooScreenerResponseDTO struct {
	Finance struct {
		Result []struct {
			Quotes []YahooScreenerQuoteDTO `json:"quotes"`
		} `json:"result"`
	} `json:"finance"`
}

type YahooScreenerQuoteDTO struct {
	Symbol              string  `json:"symbol"`
	RegularMarketPrice  float64 `json:"regularMarketPrice"`
	RegularMarketVolume int64   `json:"regularMarketVolume"`
}

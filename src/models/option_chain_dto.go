package models

// Raw provider payloads. Field names mirror the upstream JSON; conversion to
// the normalized models happens in analysis.NormalizeChain.

type StockQuoteDTO struct {
	Symbol              string  `json:"symbol"`
	RegularMarketPrice  float64 `json:"regularMarketPrice"`
	PreviousClose       float64 `json:"previousClose"`
	RegularMarketVolume int64   `json:"regularMarketVolume"`
	Synthetic           bool    `json:"-"`
}

type OptionContractDTO struct {
	Strike            float64 `json:"strike"`
	LastPrice         float64 `json:"lastPrice"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	Volume            int     `json:"volume"`
	OpenInterest      int     `json:"openInterest"`
	ImpliedVolatility float64 `json:"impliedVolatility"`
}

func (dto OptionContractDTO) ToModel() OptionContract {
	return OptionContract{
		Strike:            dto.Strike,
		LastPrice:         dto.LastPrice,
		Bid:               dto.Bid,
		Ask:               dto.Ask,
		Volume:            dto.Volume,
		OpenInterest:      dto.OpenInterest,
		ImpliedVolatility: dto.ImpliedVolatility,
	}
}

type OptionChainDTO struct {
	Calls                []OptionContractDTO `json:"calls"`
	Puts                 []OptionContractDTO `json:"puts"`
	ExpirationTimestamps []int64             `json:"expirationDates"` // unix seconds, ascending
	Synthetic            bool                `json:"-"`
}

package models

// MarketStatus describes whether the US equity market is open and what the
// displayed prices represent.
type MarketStatus struct {
	IsOpen   bool   `json:"is_open"`
	Message  string `json:"message"`
	Note     string `json:"note"`
	DataTime string `json:"data_time"`
}

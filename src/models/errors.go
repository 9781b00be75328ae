package models

import "errors"

var (
	// DataUnavailableErr means the quote or chain fetch failed or came back
	// empty. The ranker treats it as a per-symbol skip, never a fatal error.
	DataUnavailableErr = errors.New("market data unavailable")

	// InvalidChainErr means the chain was fetched but is unusable: expiration
	// outside (0, 365] days, or neither calls nor puts present.
	InvalidChainErr = errors.New("invalid option chain")

	// RateLimitedErr is surfaced by the data source on HTTP 429. Treated the
	// same as DataUnavailableErr for the affected symbol.
	RateLimitedErr = errors.New("upstream rate limited")
)

package eventpubsub

import (
	"github.com/google/uuid"

	"github.com/marketlens/options-radar/src/models"
)

type ScanStarted struct {
	ScanID  uuid.UUID
	Symbols int
}

type SymbolSkipped struct {
	ScanID uuid.UUID
	Symbol models.StockSymbol
	Reason string
}

type ScanCompleted struct {
	ScanID          uuid.UUID
	Recommendations int
	Skipped         int
	UsingFallback   bool
}

package eventpubsub

const (
	ScanStartedEvent   = "ScanStartedEvent"
	SymbolSkippedEvent = "SymbolSkippedEvent"
	ScanCompletedEvent = "ScanCompletedEvent"
)

package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.English)

// FormatUSD renders a dollar amount with thousands separators, e.g. $1,234.50.
func FormatUSD(amount float64) string {
	return usdPrinter.Sprintf("$%.2f", amount)
}

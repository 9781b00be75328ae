package models

import (
	"fmt"
	"strings"
)

type Strategy string

const (
	SellPut        Strategy = "Sell Put"
	SellCall       Strategy = "Sell Call"
	BuyCall        Strategy = "Buy Call"
	BuyPut         Strategy = "Buy Put"
	CoveredCall    Strategy = "Covered Call"
	BullCallSpread Strategy = "Bull Call Spread"
)

// Strategies returns all strategies in a stable presentation order.
func Strategies() []Strategy {
	return []Strategy{SellPut, SellCall, BuyCall, BuyPut, CoveredCall, BullCallSpread}
}

func (s Strategy) Validate() error {
	for _, known := range Strategies() {
		if s == known {
			return nil
		}
	}

	return fmt.Errorf("Strategy: Validate: invalid strategy: %s", s)
}

// Slug is the URL-safe form, e.g. "bull-call-spread".
func (s Strategy) Slug() string {
	return strings.ToLower(strings.ReplaceAll(string(s), " ", "-"))
}

// ParseStrategy accepts either the display name or the slug.
func ParseStrategy(input string) (Strategy, error) {
	normalized := strings.ToLower(strings.ReplaceAll(input, " ", "-"))
	for _, s := range Strategies() {
		if normalized == s.Slug() {
			return s, nil
		}
	}

	return "", fmt.Errorf("ParseStrategy: invalid strategy: %s", input)
}

type RiskLevel string

const (
	RiskLow         RiskLevel = "Low"
	RiskLowToMedium RiskLevel = "Low to Medium"
	RiskMedium      RiskLevel = "Medium"
	RiskHigh        RiskLevel = "High"
)

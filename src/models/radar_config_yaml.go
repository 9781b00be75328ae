package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RadarConfigYAML is the scan configuration loaded from radar.yaml.
type RadarConfigYAML struct {
	Universe        []string       `yaml:"universe"`
	BatchSize       int            `yaml:"batch_size"`
	BatchDelayMs    int            `yaml:"batch_delay_ms"`
	FetchTimeoutSec int            `yaml:"fetch_timeout_sec"`
	MaxCandidates   int            `yaml:"max_candidates"`
	TopPerStrategy  int            `yaml:"top_per_strategy"`
	Scoring         ScoringWeights `yaml:"scoring"`
}

func DefaultRadarConfig() RadarConfigYAML {
	return RadarConfigYAML{
		BatchSize:       5,
		BatchDelayMs:    200,
		FetchTimeoutSec: 10,
		MaxCandidates:   100,
		TopPerStrategy:  5,
		Scoring:         DefaultScoringWeights(),
	}
}

// LoadRadarConfig reads radar.yaml, applying defaults for anything omitted.
func LoadRadarConfig(path string) (*RadarConfigYAML, error) {
	cfg := DefaultRadarConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadRadarConfig: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadRadarConfig: failed to parse %s: %w", path, err)
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}

	if cfg.Scoring.ReturnWeight == 0 {
		cfg.Scoring = DefaultScoringWeights()
	}

	return &cfg, nil
}

func (c *RadarConfigYAML) BatchDelay() time.Duration {
	return time.Duration(c.BatchDelayMs) * time.Millisecond
}

func (c *RadarConfigYAML) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

func (c *RadarConfigYAML) UniverseSymbols() []StockSymbol {
	symbols := make([]StockSymbol, 0, len(c.Universe))
	for _, s := range c.Universe {
		symbols = append(symbols, NewStockSymbol(s))
	}

	return symbols
}

package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/marketlens/options-radar/src/models"
)

// ScanSummary is descriptive statistics over the final recommendation set.
type ScanSummary struct {
	Count           int                     `json:"count"`
	CountByStrategy map[models.Strategy]int `json:"count_by_strategy"`
	MeanScore       float64                 `json:"mean_score"`
	MedianScore     float64                 `json:"median_score"`
	ScoreStdDev     float64                 `json:"score_std_dev"`
	MeanIVPct       float64                 `json:"mean_iv_pct"`
}

func summarize(recs []models.Recommendation) ScanSummary {
	summary := ScanSummary{
		Count:           len(recs),
		CountByStrategy: make(map[models.Strategy]int),
	}

	if len(recs) == 0 {
		return summary
	}

	scores := make([]float64, 0, len(recs))
	ivs := make([]float64, 0, len(recs))

	for _, rec := range recs {
		summary.CountByStrategy[rec.Strategy]++
		scores = append(scores, rec.Score)
		ivs = append(ivs, rec.ImpliedVolatilityPct)
	}

	// The stats functions only error on empty input, which is handled above.
	summary.MeanScore, _ = stats.Mean(scores)
	summary.MedianScore, _ = stats.Median(scores)
	summary.ScoreStdDev, _ = stats.StandardDeviation(scores)
	summary.MeanIVPct, _ = stats.Mean(ivs)

	return summary
}

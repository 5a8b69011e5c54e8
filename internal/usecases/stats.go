package usecases

import (
	"drmind/internal/models"
)

// TrendPoint is one (date, sentiment) pair on the sentiment chart.
type TrendPoint struct {
	Date      string  `json:"date"`
	Sentiment float64 `json:"sentiment"`
}

// Stats is the derived view over the full entry listing. Nothing here
// is stored; it is recomputed on every page load.
type Stats struct {
	TotalEntries int
	AvgSentiment float64
	PositiveDays int
	Trend        []TrendPoint
}

// ComputeStats derives aggregates from entries ordered newest first
// (the store's listing order). The trend covers the ten most recent
// entries, oldest of that window first.
func ComputeStats(entries []models.MoodEntry) Stats {
	stats := Stats{TotalEntries: len(entries)}

	if len(entries) == 0 {
		return stats
	}

	var sum float64
	for _, e := range entries {
		sum += e.Sentiment
		if e.Sentiment > 0.3 {
			stats.PositiveDays++
		}
	}
	stats.AvgSentiment = sum / float64(len(entries))

	window := entries
	if len(window) > 10 {
		window = window[:10]
	}
	stats.Trend = make([]TrendPoint, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		stats.Trend = append(stats.Trend, TrendPoint{
			Date:      window[i].CreatedAt.Format("2006-01-02"),
			Sentiment: window[i].Sentiment,
		})
	}

	return stats
}

package insight

import (
	"math"

	"plagiarismpro-be/internal/entity"
)

type Stats struct {
	Count                int `json:"count"`
	AverageWordCount     int `json:"averageWordCount"`
	AveragePlagiarism    int `json:"averagePlagiarism"`
	AverageValidCitation int `json:"averageValidCitation"`
}

// Aggregate averages over the given entries, each rounded.
// Per-entry validity divides by max(total, 1).
func Aggregate(entries []entity.HistoryEntry) Stats {
	if len(entries) == 0 {
		return Stats{}
	}

	var words, score, validity float64
	for _, e := range entries {
		words += float64(e.WordCount)
		score += float64(e.PlagiarismScore)
		total := e.Citations.Total
		if total < 1 {
			total = 1
		}
		validity += float64(e.Citations.Valid) / float64(total) * 100
	}

	n := float64(len(entries))
	return Stats{
		Count:                len(entries),
		AverageWordCount:     int(math.Round(words / n)),
		AveragePlagiarism:    int(math.Round(score / n)),
		AverageValidCitation: int(math.Round(validity / n)),
	}
}

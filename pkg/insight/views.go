// Package insight derives display data from an analysis result.
// Every function here is pure.
package insight

import "plagiarismpro-be/internal/entity"

type Views struct {
	Gauge     Gauge             `json:"gauge"`
	Citations CitationBreakdown `json:"citations"`
	WordCount WordCountPanel    `json:"wordCount"`
	Summary   SummaryPanel      `json:"summary"`
}

func Build(r entity.AnalysisResult, summaryExpanded bool) Views {
	summary := NewSummaryPanel(r.Summary)
	if summaryExpanded {
		summary = summary.Toggle()
	}
	return Views{
		Gauge:     NewGauge(r.PlagiarismScore),
		Citations: NewCitationBreakdown(r.Citations),
		WordCount: NewWordCountPanel(r.WordCount),
		Summary:   summary,
	}
}

package dto

import (
	"time"

	"plagiarismpro-be/pkg/insight"
)

type ViewsRequest struct {
	Title           string           `json:"title"`
	WordCount       int              `json:"wordCount" validate:"min=0"`
	PlagiarismScore int              `json:"plagiarismScore" validate:"min=0,max=100"`
	Citations       CitationsPayload `json:"citations"`
	Summary         string           `json:"summary"`
	ProcessedAt     time.Time        `json:"processedAt"`
	SummaryExpanded bool             `json:"summaryExpanded"`
}

type ViewsResponse struct {
	Result AnalysisResultResponse `json:"result"`
	Views  insight.Views          `json:"views"`
}

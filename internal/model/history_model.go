package model

import "time"

// Field names match the persisted "analysisHistory" layout written by the web client.

type Citations struct {
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Total   int `json:"total"`
}

type HistoryEntry struct {
	Id              int64     `json:"id"`
	Title           string    `json:"title"`
	WordCount       int       `json:"wordCount"`
	PlagiarismScore int       `json:"plagiarismScore"`
	Citations       Citations `json:"citations"`
	Summary         string    `json:"summary"`
	ProcessedAt     time.Time `json:"processedAt"`
	Timestamp       time.Time `json:"timestamp"`
}

package entity

import "time"

type Citations struct {
	Valid   int
	Invalid int
	Total   int
}

// AnalysisResult is immutable once produced by the upload workflow.
type AnalysisResult struct {
	Title           string
	WordCount       int
	PlagiarismScore int
	Citations       Citations
	Summary         string
	ProcessedAt     time.Time
}

type HistoryEntry struct {
	Id int64
	AnalysisResult
	Timestamp time.Time
}

type JobState string

const (
	JobStateProcessing JobState = "processing"
	JobStateCompleted  JobState = "completed"
	JobStateFailed     JobState = "failed"
)

type AnalysisJob struct {
	Id        string
	DeviceId  string
	FileName  string
	State     JobState
	Phase     string
	Progress  int
	Entry     *HistoryEntry
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package dto

import "time"

type CitationsPayload struct {
	Valid   int `json:"valid" validate:"min=0"`
	Invalid int `json:"invalid" validate:"min=0"`
	Total   int `json:"total" validate:"min=0"`
}

type AnalysisResultResponse struct {
	Title           string           `json:"title"`
	WordCount       int              `json:"wordCount"`
	PlagiarismScore int              `json:"plagiarismScore"`
	Citations       CitationsPayload `json:"citations"`
	Summary         string           `json:"summary"`
	ProcessedAt     time.Time        `json:"processedAt"`
}

type HistoryEntryResponse struct {
	Id int64 `json:"id"`
	AnalysisResultResponse
	Timestamp time.Time `json:"timestamp"`
}

// UploadMeta describes a selected file. The content is never read.
type UploadMeta struct {
	FileName    string
	ContentType string
	Size        int64
}

type JobResponse struct {
	Id        string                `json:"id"`
	State     string                `json:"state"`
	Phase     string                `json:"phase"`
	Progress  int                   `json:"progress"`
	Entry     *HistoryEntryResponse `json:"entry,omitempty"`
	Error     string                `json:"error,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// ProgressMessage travels on the in-process progress topic.
type ProgressMessage struct {
	DeviceId string      `json:"deviceId"`
	Job      JobResponse `json:"job"`
}

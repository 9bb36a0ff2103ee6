package dto

type EmailReportRequest struct {
	// Empty means the profile email of the current session.
	Email string `json:"email" validate:"omitempty,email"`
}

type EmailReportResponse struct {
	Sent      bool   `json:"sent"`
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
}

type EmailStatusResponse struct {
	Sent bool `json:"sent"`
}

type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

package analysis

import (
	"errors"
	"mime"
	"strings"
)

const PDFMediaType = "application/pdf"

var (
	ErrInvalidFileType = errors.New("Invalid file type: please upload a PDF file.")
	ErrFileTooLarge    = errors.New("File too large: PDF files up to 10MB are supported.")
	ErrMissingFile     = errors.New("No file selected")
)

// CheckFile validates a selection by its declared media type and size.
// The content itself is never inspected.
func CheckFile(contentType string, size, maxBytes int64) error {
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	if err != nil || !strings.EqualFold(mediaType, PDFMediaType) {
		return ErrInvalidFileType
	}
	if maxBytes > 0 && size > maxBytes {
		return ErrFileTooLarge
	}
	return nil
}

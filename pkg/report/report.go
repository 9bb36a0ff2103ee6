// Package report produces the downloadable analysis report.
package report

import (
	"encoding/base64"
	"fmt"
)

const ContentType = "application/pdf"

// Minimal PDF header served in place of a generated document.
const placeholderPDF = "JVBERi0xLjMKJcTl8uXrp/Og0MTGCg=="

var placeholder = mustDecode(placeholderPDF)

func mustDecode(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Placeholder returns a fresh copy of the placeholder document.
func Placeholder() []byte {
	out := make([]byte, len(placeholder))
	copy(out, placeholder)
	return out
}

func FileName(title string) string {
	return fmt.Sprintf("%s_plagiarism_report.pdf", title)
}

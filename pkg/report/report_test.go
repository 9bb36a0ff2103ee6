package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderIsPDF(t *testing.T) {
	doc := Placeholder()
	assert.Equal(t, "%PDF-1.3", string(doc[:8]))

	doc[0] = 'X'
	assert.Equal(t, byte('%'), Placeholder()[0])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "paper_plagiarism_report.pdf", FileName("paper"))
}

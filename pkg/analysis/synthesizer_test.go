package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeRanges(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSeededSynthesizer(42, func() time.Time { return fixed })

	for i := 0; i < 500; i++ {
		r := s.Synthesize("paper.pdf")

		assert.Equal(t, "paper", r.Title)
		assert.GreaterOrEqual(t, r.WordCount, 1000)
		assert.Less(t, r.WordCount, 6000)
		assert.GreaterOrEqual(t, r.PlagiarismScore, 5)
		assert.Less(t, r.PlagiarismScore, 45)
		assert.GreaterOrEqual(t, r.Citations.Valid, 5)
		assert.Less(t, r.Citations.Valid, 20)
		assert.GreaterOrEqual(t, r.Citations.Invalid, 1)
		assert.Less(t, r.Citations.Invalid, 4)
		assert.Equal(t, r.Citations.Valid+r.Citations.Invalid, r.Citations.Total)
		assert.Equal(t, PlaceholderSummary, r.Summary)
		assert.Equal(t, fixed, r.ProcessedAt)
	}
}

func TestSeededSynthesizerIsDeterministic(t *testing.T) {
	a := NewSeededSynthesizer(7, nil)
	b := NewSeededSynthesizer(7, nil)

	ra, rb := a.Synthesize("x.pdf"), b.Synthesize("x.pdf")
	assert.Equal(t, ra.WordCount, rb.WordCount)
	assert.Equal(t, ra.PlagiarismScore, rb.PlagiarismScore)
	assert.Equal(t, ra.Citations, rb.Citations)
}

func TestTitleFromFileName(t *testing.T) {
	tests := map[string]string{
		"paper.pdf":             "paper",
		"Thesis Final.PDF":      "Thesis Final",
		"archive.v2.pdf":        "archive.v2",
		"dir/sub/report.pdf":    "report",
		`C:\Users\me\essay.pdf`: "essay",
		"noext":                 "noext",
		".pdf":                  UntitledDocument,
		"":                      UntitledDocument,
		"   ":                   UntitledDocument,
	}

	for in, want := range tests {
		assert.Equal(t, want, TitleFromFileName(in), "input %q", in)
	}
}

package analysis

import (
	"math/rand/v2"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"plagiarismpro-be/internal/entity"
)

const (
	UntitledDocument = "Untitled Document"

	PlaceholderSummary = "This document discusses the application of artificial intelligence in modern healthcare systems. " +
		"The paper explores various AI methodologies including machine learning algorithms, neural networks, and data processing techniques. " +
		"Key findings suggest significant improvements in diagnostic accuracy and patient care efficiency when AI systems are properly integrated into healthcare workflows."
)

// Half-open ranges of the mocked metrics.
const (
	minWordCount, maxWordCount = 1000, 6000
	minScore, maxScore         = 5, 45
	minValid, maxValid         = 5, 20
	minInvalid, maxInvalid     = 1, 4
)

// Synthesizer builds mocked results. It is safe for concurrent use.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
}

// NewSeededSynthesizer returns a deterministic synthesizer.
func NewSeededSynthesizer(seed uint64, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

func (s *Synthesizer) Synthesize(fileName string) entity.AnalysisResult {
	s.mu.Lock()
	wordCount := s.between(minWordCount, maxWordCount)
	score := s.between(minScore, maxScore)
	valid := s.between(minValid, maxValid)
	invalid := s.between(minInvalid, maxInvalid)
	s.mu.Unlock()

	return entity.AnalysisResult{
		Title:           TitleFromFileName(fileName),
		WordCount:       wordCount,
		PlagiarismScore: score,
		Citations: entity.Citations{
			Valid:   valid,
			Invalid: invalid,
			Total:   valid + invalid,
		},
		Summary:     PlaceholderSummary,
		ProcessedAt: s.now().UTC(),
	}
}

func (s *Synthesizer) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo)
}

// TitleFromFileName strips any directory part and the extension.
func TitleFromFileName(fileName string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if base == "." || base == "/" {
		return UntitledDocument
	}
	title := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if title == "" {
		return UntitledDocument
	}
	return title
}

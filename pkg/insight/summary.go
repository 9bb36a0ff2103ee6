package insight

type SummaryPanel struct {
	Text     string `json:"text"`
	Expanded bool   `json:"expanded"`
}

// NewSummaryPanel starts collapsed.
func NewSummaryPanel(text string) SummaryPanel {
	return SummaryPanel{Text: text}
}

func (p SummaryPanel) Toggle() SummaryPanel {
	p.Expanded = !p.Expanded
	return p
}

package insight

import "math"

const (
	wordsPerMinute    = 200
	wordsPerPage      = 250
	charactersPerWord = 5.5
)

type WordCountPanel struct {
	Count          int    `json:"count"`
	Category       string `json:"category"`
	Color          string `json:"color"`
	ReadingMinutes int    `json:"readingMinutes"`
	Characters     int    `json:"characters"`
	Pages          int    `json:"pages"`
}

func WordCountCategory(count int) (label, color string) {
	switch {
	case count < 500:
		return "Short", "warning"
	case count < 2000:
		return "Medium", "accent"
	case count < 5000:
		return "Long", "success"
	default:
		return "Very Long", "primary"
	}
}

func NewWordCountPanel(count int) WordCountPanel {
	label, color := WordCountCategory(count)
	return WordCountPanel{
		Count:          count,
		Category:       label,
		Color:          color,
		ReadingMinutes: ceilDiv(count, wordsPerMinute),
		Characters:     int(math.Round(float64(count) * charactersPerWord)),
		Pages:          ceilDiv(count, wordsPerPage),
	}
}

func ceilDiv(n, d int) int {
	return int(math.Ceil(float64(n) / float64(d)))
}

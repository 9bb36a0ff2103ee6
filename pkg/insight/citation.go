package insight

import (
	"math"

	"plagiarismpro-be/internal/entity"
)

const excellentValidity = 80

type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type CitationBreakdown struct {
	Slices          []Slice `json:"slices"`
	Valid           int     `json:"valid"`
	Invalid         int     `json:"invalid"`
	Total           int     `json:"total"`
	ValidPercentage int     `json:"validPercentage"`
	Excellent       bool    `json:"excellent"`
	Verdict         string  `json:"verdict"`
}

// ValidityPercentage is round(valid/total*100), or 0 without citations.
func ValidityPercentage(c entity.Citations) int {
	if c.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(c.Valid) / float64(c.Total) * 100))
}

func NewCitationBreakdown(c entity.Citations) CitationBreakdown {
	pct := ValidityPercentage(c)
	verdict := "Some citations need attention"
	if pct >= excellentValidity {
		verdict = "Excellent citation quality"
	}
	return CitationBreakdown{
		Slices: []Slice{
			{Name: "Valid Citations", Value: c.Valid, Color: "success"},
			{Name: "Invalid Citations", Value: c.Invalid, Color: "destructive"},
		},
		Valid:           c.Valid,
		Invalid:         c.Invalid,
		Total:           c.Total,
		ValidPercentage: pct,
		Excellent:       pct >= excellentValidity,
		Verdict:         verdict,
	}
}

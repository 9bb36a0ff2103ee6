package insight

import "math"

const (
	gaugeSweepDegrees = 180.0
	gaugeArcLength    = 251.3
)

type Tier struct {
	Label        string `json:"label"`
	Color        string `json:"color"`
	Background   string `json:"background"`
	BadgeVariant string `json:"badgeVariant"`
	Guidance     string `json:"guidance"`
}

var (
	TierExcellent = Tier{
		Label:        "Excellent",
		Color:        "success",
		Background:   "from-success/20 to-success/5",
		BadgeVariant: "default",
		Guidance:     "Great job! Your document appears to be highly original with minimal similarity to existing sources.",
	}
	TierGood = Tier{
		Label:        "Good",
		Color:        "warning",
		Background:   "from-warning/20 to-warning/5",
		BadgeVariant: "secondary",
		Guidance:     "Good originality. Some common phrases detected, but overall acceptable.",
	}
	TierModerate = Tier{
		Label:        "Moderate",
		Color:        "orange-500",
		Background:   "from-orange-500/20 to-orange-500/5",
		BadgeVariant: "destructive",
		Guidance:     "Moderate similarity detected. Consider reviewing and revising similar sections.",
	}
	TierHighRisk = Tier{
		Label:        "High Risk",
		Color:        "destructive",
		Background:   "from-destructive/20 to-destructive/5",
		BadgeVariant: "destructive",
		Guidance:     "High similarity detected. Significant revision recommended to improve originality.",
	}
)

type Gauge struct {
	Score      int     `json:"score"`
	Tier       Tier    `json:"tier"`
	Fraction   float64 `json:"fraction"`
	Angle      float64 `json:"angle"`
	DashLength float64 `json:"dashLength"`
	ArcLength  float64 `json:"arcLength"`
}

// ScoreTier picks the tier with closed-open bounds at 10, 25 and 50.
func ScoreTier(score int) Tier {
	switch {
	case score < 10:
		return TierExcellent
	case score < 25:
		return TierGood
	case score < 50:
		return TierModerate
	default:
		return TierHighRisk
	}
}

func NewGauge(score int) Gauge {
	fraction := math.Min(float64(score), 100) / 100
	if fraction < 0 {
		fraction = 0
	}
	return Gauge{
		Score:      score,
		Tier:       ScoreTier(score),
		Fraction:   fraction,
		Angle:      fraction * gaugeSweepDegrees,
		DashLength: fraction * gaugeArcLength,
		ArcLength:  gaugeArcLength,
	}
}

package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCountCategory(t *testing.T) {
	cases := map[int]string{
		0:    "Short",
		499:  "Short",
		500:  "Medium",
		1999: "Medium",
		2000: "Long",
		4999: "Long",
		5000: "Very Long",
	}
	for count, want := range cases {
		label, _ := WordCountCategory(count)
		assert.Equal(t, want, label, "count %d", count)
	}
}

func TestNewWordCountPanel(t *testing.T) {
	p := NewWordCountPanel(1001)
	assert.Equal(t, 6, p.ReadingMinutes)
	assert.Equal(t, 5506, p.Characters)
	assert.Equal(t, 5, p.Pages)

	empty := NewWordCountPanel(0)
	assert.Zero(t, empty.ReadingMinutes)
	assert.Zero(t, empty.Pages)
}

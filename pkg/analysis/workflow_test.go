package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowRunReportsPhasesInOrder(t *testing.T) {
	w := NewWorkflow(time.Millisecond, NewSeededSynthesizer(1, nil))

	var seen []Phase
	result, err := w.Run(context.Background(), "paper.pdf", func(p Phase) {
		seen = append(seen, p)
	})
	require.NoError(t, err)

	assert.Equal(t, Phases, seen)
	assert.Equal(t, []int{20, 40, 60, 80, 90, 100}, progressOf(seen))
	assert.Equal(t, "paper", result.Title)
}

func TestWorkflowRunStopsOnCancel(t *testing.T) {
	w := NewWorkflow(time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := w.Run(ctx, "paper.pdf", func(Phase) { calls++ })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func progressOf(phases []Phase) []int {
	out := make([]int, 0, len(phases))
	for _, p := range phases {
		out = append(out, p.Progress)
	}
	return out
}

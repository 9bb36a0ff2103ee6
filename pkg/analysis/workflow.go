package analysis

import (
	"context"
	"time"

	"plagiarismpro-be/internal/entity"
)

// ProgressFunc observes each completed phase.
type ProgressFunc func(phase Phase)

// Workflow runs the simulated processing of one accepted upload.
type Workflow struct {
	stepDelay   time.Duration
	synthesizer *Synthesizer
}

func NewWorkflow(stepDelay time.Duration, synthesizer *Synthesizer) *Workflow {
	if synthesizer == nil {
		synthesizer = NewSynthesizer()
	}
	return &Workflow{
		stepDelay:   stepDelay,
		synthesizer: synthesizer,
	}
}

// Run waits one step delay before each phase, reports it, and finally
// synthesizes the result. It stops early only when ctx is cancelled.
func (w *Workflow) Run(ctx context.Context, fileName string, onProgress ProgressFunc) (entity.AnalysisResult, error) {
	for _, phase := range Phases {
		if err := sleep(ctx, w.stepDelay); err != nil {
			return entity.AnalysisResult{}, err
		}
		if onProgress != nil {
			onProgress(phase)
		}
	}
	return w.synthesizer.Synthesize(fileName), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

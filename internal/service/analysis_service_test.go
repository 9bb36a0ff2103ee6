package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/memory"
	"plagiarismpro-be/pkg/analysis"
	"plagiarismpro-be/pkg/events"
)

func newAnalysis(t *testing.T) (IAnalysisService, stores, *gochannel.GoChannel, *recordingPublisher) {
	t.Helper()
	st := newStores()
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16, BlockPublishUntilSubscriberAck: true}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	pub := &recordingPublisher{}

	svc := NewAnalysisService(
		analysis.NewWorkflow(time.Millisecond, analysis.NewSeededSynthesizer(3, nil)),
		10*1024*1024,
		memory.NewJobRepository(),
		st.history,
		pubSub,
		pub,
		logger.NewNopLogger(),
	)
	return svc, st, pubSub, pub
}

func pdf(name string) dto.UploadMeta {
	return dto.UploadMeta{FileName: name, ContentType: "application/pdf", Size: 2048}
}

func TestSubmitRejectsNonPDF(t *testing.T) {
	ctx := context.Background()
	svc, st, _, _ := newAnalysis(t)

	_, err := svc.Submit(ctx, testDevice, dto.UploadMeta{FileName: "notes.txt", ContentType: "text/plain", Size: 10})
	assert.ErrorIs(t, err, analysis.ErrInvalidFileType)

	_, err = svc.Submit(ctx, testDevice, dto.UploadMeta{FileName: "big.pdf", ContentType: "application/pdf", Size: 11 * 1024 * 1024})
	assert.ErrorIs(t, err, analysis.ErrFileTooLarge)

	svc.Drain()
	entries, err := st.history.FindAll(ctx, testDevice)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitAndAwaitAppendsHistory(t *testing.T) {
	ctx := context.Background()
	svc, st, _, pub := newAnalysis(t)

	job, err := svc.Submit(ctx, testDevice, pdf("paper.pdf"))
	require.NoError(t, err)
	assert.Equal(t, string(entity.JobStateProcessing), job.State)

	done, err := svc.Await(ctx, testDevice, job.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.JobStateCompleted), done.State)
	assert.Equal(t, 100, done.Progress)
	assert.Equal(t, "Finalizing results...", done.Phase)
	require.NotNil(t, done.Entry)
	assert.Equal(t, "paper", done.Entry.Title)

	entries, err := st.history.FindAll(ctx, testDevice)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, done.Entry.Id, entries[0].Id)

	assert.Equal(t, []string{events.AnalysisCompleted}, pub.types())
}

func TestSubmitSurvivesRequestCancellation(t *testing.T) {
	svc, st, _, _ := newAnalysis(t)

	ctx, cancel := context.WithCancel(context.Background())
	job, err := svc.Submit(ctx, testDevice, pdf("essay.pdf"))
	require.NoError(t, err)
	cancel()

	svc.Drain()
	got, err := svc.Job(context.Background(), testDevice, job.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.JobStateCompleted), got.State)

	entries, _ := st.history.FindAll(context.Background(), testDevice)
	assert.Len(t, entries, 1)
}

func TestJobIsScopedToDevice(t *testing.T) {
	svc, _, _, _ := newAnalysis(t)

	job, err := svc.Submit(context.Background(), testDevice, pdf("paper.pdf"))
	require.NoError(t, err)
	svc.Drain()

	_, err = svc.Job(context.Background(), "someone-else", job.Id)
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = svc.Job(context.Background(), testDevice, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestSubmitPublishesEveryPhase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, _, pubSub, _ := newAnalysis(t)

	messages, err := pubSub.Subscribe(ctx, ProgressTopic)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, testDevice, pdf("paper.pdf"))
	require.NoError(t, err)

	var progress []int
	var last dto.ProgressMessage
	for len(progress) < len(analysis.Phases)+1 {
		select {
		case msg := <-messages:
			require.NoError(t, json.Unmarshal(msg.Payload, &last))
			msg.Ack()
			progress = append(progress, last.Job.Progress)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %v", progress)
		}
	}

	assert.Equal(t, []int{20, 40, 60, 80, 90, 100, 100}, progress)
	assert.Equal(t, testDevice, last.DeviceId)
	assert.Equal(t, string(entity.JobStateCompleted), last.Job.State)
}

package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/logger"
)

type frame struct {
	device, kind string
	job          dto.JobResponse
}

type recordingNotifier struct {
	mu     sync.Mutex
	frames []frame
}

func (n *recordingNotifier) Send(deviceID, msgType string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.frames = append(n.frames, frame{device: deviceID, kind: msgType, job: data.(dto.JobResponse)})
}

func (n *recordingNotifier) snapshot() []frame {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]frame(nil), n.frames...)
}

func TestProgressServiceForwardsFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{BlockPublishUntilSubscriberAck: true}, watermill.NopLogger{})
	defer pubSub.Close()

	notifier := &recordingNotifier{}
	require.NoError(t, NewProgressService(pubSub, ProgressTopic, notifier, logger.NewNopLogger()).Consume(ctx))

	publish := func(state string, progress int) {
		payload, _ := json.Marshal(dto.ProgressMessage{
			DeviceId: testDevice,
			Job:      dto.JobResponse{Id: "j", State: state, Progress: progress},
		})
		require.NoError(t, pubSub.Publish(ProgressTopic, message.NewMessage(watermill.NewUUID(), payload)))
	}
	publish("processing", 20)
	publish("completed", 100)
	require.NoError(t, pubSub.Publish(ProgressTopic, message.NewMessage(watermill.NewUUID(), []byte("garbage"))))

	require.Eventually(t, func() bool { return len(notifier.snapshot()) == 2 }, time.Second, time.Millisecond)
	frames := notifier.snapshot()
	assert.Equal(t, FrameProgress, frames[0].kind)
	assert.Equal(t, 20, frames[0].job.Progress)
	assert.Equal(t, FrameCompleted, frames[1].kind)
	assert.Equal(t, testDevice, frames[1].device)
}

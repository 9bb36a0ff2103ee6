package service

import (
	"context"
	"encoding/json"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	FrameProgress  = "analysis.progress"
	FrameCompleted = "analysis.completed"
	FrameFailed    = "analysis.failed"
)

// ProgressNotifier pushes a frame to every socket of a device.
type ProgressNotifier interface {
	Send(deviceID, msgType string, data interface{})
}

type IProgressService interface {
	Consume(ctx context.Context) error
}

type progressService struct {
	subscriber message.Subscriber
	topicName  string
	notifier   ProgressNotifier
	logger     logger.ILogger
}

func NewProgressService(subscriber message.Subscriber, topicName string, notifier ProgressNotifier, log logger.ILogger) IProgressService {
	return &progressService{
		subscriber: subscriber,
		topicName:  topicName,
		notifier:   notifier,
		logger:     log,
	}
}

func (ps *progressService) Consume(ctx context.Context) error {
	messages, err := ps.subscriber.Subscribe(ctx, ps.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ps.processMessage(msg)
		}
	}()

	return nil
}

func (ps *progressService) processMessage(msg *message.Message) {
	// Always ack: progress frames are not worth redelivering.
	defer msg.Ack()

	var payload dto.ProgressMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ps.logger.Error("PROGRESS", "Failed to unmarshal message", map[string]interface{}{"error": err})
		return
	}

	frame := FrameProgress
	switch entity.JobState(payload.Job.State) {
	case entity.JobStateCompleted:
		frame = FrameCompleted
	case entity.JobStateFailed:
		frame = FrameFailed
	}

	ps.notifier.Send(payload.DeviceId, frame, payload.Job)
	ps.logger.Info("PROGRESS", "Frame pushed", map[string]interface{}{
		"device_id": payload.DeviceId,
		"job_id":    payload.Job.Id,
		"frame":     frame,
		"progress":  payload.Job.Progress,
	})
}

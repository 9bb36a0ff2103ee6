package service

import (
	"context"
	"errors"
	"time"

	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/pkg/events"
)

var (
	ErrHistoryEntryNotFound = errors.New("History entry not found")
	ErrJobNotFound          = errors.New("Analysis job not found")
	ErrNoRecipient          = errors.New("No recipient: log in or provide an email address")
	ErrCitationTotal        = errors.New("citations.total must equal valid + invalid")
)

// EventPublisher is satisfied by the NATS publisher. A nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

func publishEvent(ctx context.Context, pub EventPublisher, log logger.ILogger, eventType string, data map[string]interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
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

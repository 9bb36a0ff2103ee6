package service

import (
	"context"

	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/pkg/events"
	pktNats "plagiarismpro-be/pkg/nats"
)

// EventSubscriber is satisfied by the NATS subscriber.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

type IAuditService interface {
	Start(ctx context.Context) error
	Handle(ctx context.Context, event events.Event) error
}

// auditService writes every domain event to the application log.
type auditService struct {
	subscriber EventSubscriber
	logger     logger.ILogger
}

func NewAuditService(subscriber EventSubscriber, log logger.ILogger) IAuditService {
	return &auditService{subscriber: subscriber, logger: log}
}

func (s *auditService) Start(ctx context.Context) error {
	return s.subscriber.Subscribe(ctx, pktNats.Subject(">"), "plagiarismpro-audit", s.Handle)
}

func (s *auditService) Handle(_ context.Context, event events.Event) error {
	details := make(map[string]interface{}, len(event.Payload())+1)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["occurred_at"] = event.Timestamp()

	s.logger.Info("AUDIT", event.EventType(), details)
	return nil
}

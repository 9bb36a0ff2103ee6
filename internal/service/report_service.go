package service

import (
	"context"
	"time"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/pkg/mailer"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/internal/repository/memory"
	"plagiarismpro-be/pkg/events"
	"plagiarismpro-be/pkg/report"
)

type IReportService interface {
	Download(ctx context.Context, deviceID string, id int64) (*dto.ReportFile, error)
	Email(ctx context.Context, deviceID string, id int64, req *dto.EmailReportRequest) (*dto.EmailReportResponse, error)
	EmailStatus(ctx context.Context, deviceID string, id int64) (*dto.EmailStatusResponse, error)
}

type ReportDelays struct {
	Download time.Duration
	Email    time.Duration
}

type reportService struct {
	history        IHistoryService
	sessions       contract.SessionRepository
	mailer         mailer.IEmailService
	delivers       bool
	sent           *memory.IndicatorRepository
	delays         ReportDelays
	eventPublisher EventPublisher
	logger         logger.ILogger
}

// NewReportService sends through mailer. delivers tells callers whether that
// mailer reaches a real inbox.
func NewReportService(
	history IHistoryService,
	sessions contract.SessionRepository,
	mail mailer.IEmailService,
	delivers bool,
	sent *memory.IndicatorRepository,
	delays ReportDelays,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IReportService {
	return &reportService{
		history:        history,
		sessions:       sessions,
		mailer:         mail,
		delivers:       delivers,
		sent:           sent,
		delays:         delays,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *reportService) Download(ctx context.Context, deviceID string, id int64) (*dto.ReportFile, error) {
	entry, err := s.history.Get(ctx, deviceID, id)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, s.delays.Download); err != nil {
		return nil, err
	}

	return &dto.ReportFile{
		FileName:    report.FileName(entry.Title),
		ContentType: report.ContentType,
		Content:     report.Placeholder(),
	}, nil
}

func (s *reportService) Email(ctx context.Context, deviceID string, id int64, req *dto.EmailReportRequest) (*dto.EmailReportResponse, error) {
	entry, err := s.history.Get(ctx, deviceID, id)
	if err != nil {
		return nil, err
	}

	recipient := req.Email
	if recipient == "" {
		session, err := s.sessions.Find(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		if session.Profile != nil {
			recipient = session.Profile.Email
		}
	}
	if recipient == "" {
		return nil, ErrNoRecipient
	}

	if err := wait(ctx, s.delays.Email); err != nil {
		return nil, err
	}

	if err := s.mailer.SendReport(recipient, entry.Title, report.FileName(entry.Title), report.Placeholder()); err != nil {
		return nil, err
	}
	s.sent.Set(deviceID, id)

	publishEvent(ctx, s.eventPublisher, s.logger, events.ReportEmailed, map[string]interface{}{
		"device_id": deviceID,
		"entry_id":  id,
		"delivered": s.delivers,
	})

	return &dto.EmailReportResponse{
		Sent:      true,
		Recipient: recipient,
		Delivered: s.delivers,
	}, nil
}

func (s *reportService) EmailStatus(_ context.Context, deviceID string, id int64) (*dto.EmailStatusResponse, error) {
	return &dto.EmailStatusResponse{Sent: s.sent.IsSet(deviceID, id)}, nil
}

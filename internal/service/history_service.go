package service

import (
	"context"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/pkg/events"
	"plagiarismpro-be/pkg/insight"
)

type IHistoryService interface {
	List(ctx context.Context, deviceID string) (*dto.HistoryListResponse, error)
	Get(ctx context.Context, deviceID string, id int64) (*entity.HistoryEntry, error)
	Delete(ctx context.Context, deviceID string, id int64) error
	Views(ctx context.Context, deviceID string, id int64, summaryExpanded bool) (*dto.ViewsResponse, error)
}

type historyService struct {
	history        contract.HistoryRepository
	eventPublisher EventPublisher
	logger         logger.ILogger
}

func NewHistoryService(history contract.HistoryRepository, eventPublisher EventPublisher, log logger.ILogger) IHistoryService {
	return &historyService{
		history:        history,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *historyService) List(ctx context.Context, deviceID string) (*dto.HistoryListResponse, error) {
	entries, err := s.history.FindAll(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.HistoryItemResponse, 0, len(entries))
	for i := range entries {
		tier := insight.ScoreTier(entries[i].PlagiarismScore)
		items = append(items, dto.HistoryItemResponse{
			HistoryEntryResponse: *dto.NewHistoryEntryResponse(&entries[i]),
			Label:                tier.Label,
			BadgeVariant:         tier.BadgeVariant,
			ValidPercentage:      insight.ValidityPercentage(entries[i].Citations),
		})
	}

	return &dto.HistoryListResponse{
		Entries: items,
		Stats:   insight.Aggregate(entries),
	}, nil
}

func (s *historyService) Get(ctx context.Context, deviceID string, id int64) (*entity.HistoryEntry, error) {
	entry, err := s.history.FindOne(ctx, deviceID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrHistoryEntryNotFound
	}
	return entry, nil
}

func (s *historyService) Delete(ctx context.Context, deviceID string, id int64) error {
	deleted, err := s.history.Delete(ctx, deviceID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHistoryEntryNotFound
	}

	s.logger.Info("HISTORY", "Entry deleted", map[string]interface{}{"device_id": deviceID, "entry_id": id})
	publishEvent(ctx, s.eventPublisher, s.logger, events.HistoryEntryDeleted, map[string]interface{}{
		"device_id": deviceID,
		"entry_id":  id,
	})
	return nil
}

func (s *historyService) Views(ctx context.Context, deviceID string, id int64, summaryExpanded bool) (*dto.ViewsResponse, error) {
	entry, err := s.Get(ctx, deviceID, id)
	if err != nil {
		return nil, err
	}
	return &dto.ViewsResponse{
		Result: dto.NewAnalysisResultResponse(entry.AnalysisResult),
		Views:  insight.Build(entry.AnalysisResult, summaryExpanded),
	}, nil
}

package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/mapper"
	"plagiarismpro-be/internal/model"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
)

// HistoryRepositoryImpl keeps a device's history as one JSON array under
// the analysisHistory key. Every mutation rewrites the whole array.
type HistoryRepositoryImpl struct {
	store  contract.DeviceStorageRepository
	limit  int
	locks  *deviceLocks
	mapper *mapper.HistoryMapper
	logger logger.ILogger
}

func NewHistoryRepository(store contract.DeviceStorageRepository, limit int, log logger.ILogger) contract.HistoryRepository {
	if limit <= 0 {
		limit = 10
	}
	return &HistoryRepositoryImpl{
		store:  store,
		limit:  limit,
		locks:  &deviceLocks{},
		mapper: mapper.NewHistoryMapper(),
		logger: log,
	}
}

func (r *HistoryRepositoryImpl) Append(ctx context.Context, deviceID string, result entity.AnalysisResult, now time.Time) (*entity.HistoryEntry, error) {
	unlock := r.locks.lock(deviceID)
	defer unlock()

	entries, err := r.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	entry := entity.HistoryEntry{
		Id:             nextID(entries, now),
		AnalysisResult: result,
		Timestamp:      now.UTC(),
	}

	entries = append([]entity.HistoryEntry{entry}, entries...)
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}

	if err := r.persist(ctx, deviceID, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *HistoryRepositoryImpl) FindAll(ctx context.Context, deviceID string) ([]entity.HistoryEntry, error) {
	return r.load(ctx, deviceID)
}

func (r *HistoryRepositoryImpl) FindOne(ctx context.Context, deviceID string, id int64) (*entity.HistoryEntry, error) {
	entries, err := r.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Id == id {
			return &entries[i], nil
		}
	}
	return nil, nil
}

func (r *HistoryRepositoryImpl) Delete(ctx context.Context, deviceID string, id int64) (bool, error) {
	unlock := r.locks.lock(deviceID)
	defer unlock()

	entries, err := r.load(ctx, deviceID)
	if err != nil {
		return false, err
	}

	kept := make([]entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Id != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}

	if err := r.persist(ctx, deviceID, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *HistoryRepositoryImpl) load(ctx context.Context, deviceID string) ([]entity.HistoryEntry, error) {
	raw, ok, err := r.store.GetItem(ctx, deviceID, contract.KeyAnalysisHistory)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !ok || raw == "" {
		return []entity.HistoryEntry{}, nil
	}

	var stored []model.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		r.logger.Warn("HISTORY", "Discarding unreadable history", map[string]interface{}{
			"device_id": deviceID,
			"error":     err.Error(),
		})
		return []entity.HistoryEntry{}, nil
	}
	return r.mapper.ToEntities(stored), nil
}

func (r *HistoryRepositoryImpl) persist(ctx context.Context, deviceID string, entries []entity.HistoryEntry) error {
	raw, err := json.Marshal(r.mapper.ToModels(entries))
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := r.store.SetItem(ctx, deviceID, contract.KeyAnalysisHistory, string(raw)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// nextID is the save time in Unix milliseconds, bumped above every
// existing id so ids stay unique and the head always holds the largest.
func nextID(entries []entity.HistoryEntry, now time.Time) int64 {
	id := now.UnixMilli()
	for _, e := range entries {
		if e.Id >= id {
			id = e.Id + 1
		}
	}
	return id
}

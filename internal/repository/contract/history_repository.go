package contract

import (
	"context"
	"time"

	"plagiarismpro-be/internal/entity"
)

type HistoryRepository interface {
	// Append prepends a new entry and truncates to the configured limit.
	Append(ctx context.Context, deviceID string, result entity.AnalysisResult, now time.Time) (*entity.HistoryEntry, error)
	// FindAll returns entries newest first. Missing or unreadable data is an empty list.
	FindAll(ctx context.Context, deviceID string) ([]entity.HistoryEntry, error)
	FindOne(ctx context.Context, deviceID string, id int64) (*entity.HistoryEntry, error)
	Delete(ctx context.Context, deviceID string, id int64) (bool, error)
}

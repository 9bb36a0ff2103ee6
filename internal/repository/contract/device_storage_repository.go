package contract

import "context"

// Keys of the per-device storage namespace.
const (
	KeyToken           = "token"
	KeyUser            = "user"
	KeyAnalysisHistory = "analysisHistory"
)

// DeviceStorageRepository is a string-keyed store scoped to one device.
type DeviceStorageRepository interface {
	GetItem(ctx context.Context, deviceID, key string) (string, bool, error)
	SetItem(ctx context.Context, deviceID, key, value string) error
	RemoveItem(ctx context.Context, deviceID, key string) error
}

package memory

import (
	"context"

	"plagiarismpro-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// DeviceStorageRepository keeps device namespaces in process memory.
// Items never expire.
type DeviceStorageRepository struct {
	cache *cache.Cache
}

func NewDeviceStorageRepository() contract.DeviceStorageRepository {
	return &DeviceStorageRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func itemKey(deviceID, key string) string {
	return deviceID + "\x00" + key
}

func (r *DeviceStorageRepository) GetItem(_ context.Context, deviceID, key string) (string, bool, error) {
	if x, found := r.cache.Get(itemKey(deviceID, key)); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (r *DeviceStorageRepository) SetItem(_ context.Context, deviceID, key, value string) error {
	r.cache.Set(itemKey(deviceID, key), value, cache.NoExpiration)
	return nil
}

func (r *DeviceStorageRepository) RemoveItem(_ context.Context, deviceID, key string) error {
	r.cache.Delete(itemKey(deviceID, key))
	return nil
}

package rediskv

import (
	"context"
	"errors"

	"plagiarismpro-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "plagiarismpro:device:"

// DeviceStorageRepository maps each device to one redis hash.
type DeviceStorageRepository struct {
	client *redis.Client
}

func NewDeviceStorageRepository(client *redis.Client) contract.DeviceStorageRepository {
	return &DeviceStorageRepository{client: client}
}

func hashKey(deviceID string) string {
	return keyPrefix + deviceID
}

func (r *DeviceStorageRepository) GetItem(ctx context.Context, deviceID, key string) (string, bool, error) {
	val, err := r.client.HGet(ctx, hashKey(deviceID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *DeviceStorageRepository) SetItem(ctx context.Context, deviceID, key, value string) error {
	return r.client.HSet(ctx, hashKey(deviceID), key, value).Err()
}

func (r *DeviceStorageRepository) RemoveItem(ctx context.Context, deviceID, key string) error {
	return r.client.HDel(ctx, hashKey(deviceID), key).Err()
}

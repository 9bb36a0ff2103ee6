package implementation

import (
	"context"
	"errors"

	"plagiarismpro-be/internal/model"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeviceStorageRepositoryImpl struct {
	db *gorm.DB
}

func NewDeviceStorageRepository(db *gorm.DB) contract.DeviceStorageRepository {
	return &DeviceStorageRepositoryImpl{db: db}
}

func (r *DeviceStorageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DeviceStorageRepositoryImpl) GetItem(ctx context.Context, deviceID, key string) (string, bool, error) {
	var item model.DeviceStorageItem
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByDevice{DeviceID: deviceID},
		specification.ByKey{Key: key},
	)
	if err := query.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return item.Value, true, nil
}

func (r *DeviceStorageRepositoryImpl) SetItem(ctx context.Context, deviceID, key, value string) error {
	item := model.DeviceStorageItem{DeviceId: deviceID, Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (r *DeviceStorageRepositoryImpl) RemoveItem(ctx context.Context, deviceID, key string) error {
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByDevice{DeviceID: deviceID},
		specification.ByKey{Key: key},
	)
	return query.Delete(&model.DeviceStorageItem{}).Error
}

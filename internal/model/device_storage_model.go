package model

import "time"

// DeviceStorageItem is one string-keyed value in a device's storage namespace.
type DeviceStorageItem struct {
	DeviceId  string    `gorm:"type:varchar(64);primaryKey"`
	Key       string    `gorm:"type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (DeviceStorageItem) TableName() string {
	return "device_storage"
}

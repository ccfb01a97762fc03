package db

import (
	"time"

	"gorm.io/gorm"
)

// Record is one named snapshot blob. The store keeps the whole intent
// collection under one key and the profile under another, replacing the
// value wholesale on every mutation.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

// Load returns the blob stored under key, reporting absence without error.
func (repo *RecordRepository) Load(key string) (string, bool, error) {
	record := Record{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return record.Value, true, nil
}

// Save atomically replaces the blob stored under key.
func (repo *RecordRepository) Save(key string, value string) error {
	record := Record{Key: key, Value: value, UpdatedAt: time.Now()}
	return repo.database.Save(&record).Error
}

func (repo *RecordRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&Record{}).Error
}

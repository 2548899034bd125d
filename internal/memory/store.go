package memory

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type implStore struct {
	db *gorm.DB
}

// New opens (creating if needed) the SQLite database at path and migrates
// the schema. The handle is owned by the process entry point and shared.
func New(path string) (Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&VideoMemory{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &implStore{db: db}, nil
}

func (s *implStore) Exists(videoID string) (bool, error) {
	var count int64
	if err := s.db.Model(&VideoMemory{}).Where("id = ?", videoID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check video %s: %w", videoID, err)
	}
	return count > 0, nil
}

// Save inserts the record, ignoring the insert when a row with the same ID
// already exists. Two racing pipelines for the same new identity thereby
// collapse to a single row instead of one of them erroring.
func (s *implStore) Save(record *VideoMemory) error {
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
	if err != nil {
		return fmt.Errorf("save video %s: %w", record.ID, err)
	}
	return nil
}

func (s *implStore) Get(videoID string) (*VideoMemory, error) {
	var record VideoMemory
	err := s.db.First(&record, "id = ?", videoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get video %s: %w", videoID, err)
	}
	return &record, nil
}

func (s *implStore) Recent(limit int) ([]VideoMemory, error) {
	var records []VideoMemory
	if err := s.db.Order("processed_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list recent videos: %w", err)
	}
	return records, nil
}

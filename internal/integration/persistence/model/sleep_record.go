// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// SleepRecordModel represents the sleep_records table in the database.
type SleepRecordModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	SleepTime     time.Time `gorm:"not null"`
	WakeupTime    time.Time `gorm:"not null;index"`
	DurationHours float64   `gorm:"type:decimal(5,2);not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the SleepRecordModel.
func (SleepRecordModel) TableName() string {
	return "sleep_records"
}

// ToEntity converts a SleepRecordModel to a domain SleepRecord entity.
func (m *SleepRecordModel) ToEntity() *entity.SleepRecord {
	return &entity.SleepRecord{
		ID:            m.ID,
		UserID:        m.UserID,
		SleepTime:     m.SleepTime,
		WakeupTime:    m.WakeupTime,
		DurationHours: m.DurationHours,
		CreatedAt:     m.CreatedAt,
	}
}

// SleepRecordFromEntity creates a SleepRecordModel from a domain SleepRecord entity.
func SleepRecordFromEntity(record *entity.SleepRecord) *SleepRecordModel {
	return &SleepRecordModel{
		ID:            record.ID,
		UserID:        record.UserID,
		SleepTime:     record.SleepTime,
		WakeupTime:    record.WakeupTime,
		DurationHours: record.DurationHours,
		CreatedAt:     record.CreatedAt,
	}
}

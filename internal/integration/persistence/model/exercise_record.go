// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// ExerciseRecordModel represents the exercise_records table in the database.
type ExerciseRecordModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(20);not null;index"`
	DurationMinutes float64   `gorm:"type:decimal(7,2);not null"`
	CaloriesBurned  float64   `gorm:"type:decimal(8,2);not null"`
	ExerciseTime    time.Time `gorm:"not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExerciseRecordModel.
func (ExerciseRecordModel) TableName() string {
	return "exercise_records"
}

// ToEntity converts an ExerciseRecordModel to a domain ExerciseRecord entity.
func (m *ExerciseRecordModel) ToEntity() *entity.ExerciseRecord {
	return &entity.ExerciseRecord{
		ID:              m.ID,
		UserID:          m.UserID,
		Type:            entity.ExerciseType(m.Type),
		DurationMinutes: m.DurationMinutes,
		CaloriesBurned:  m.CaloriesBurned,
		ExerciseTime:    m.ExerciseTime,
		CreatedAt:       m.CreatedAt,
	}
}

// ExerciseRecordFromEntity creates an ExerciseRecordModel from a domain ExerciseRecord entity.
func ExerciseRecordFromEntity(record *entity.ExerciseRecord) *ExerciseRecordModel {
	return &ExerciseRecordModel{
		ID:              record.ID,
		UserID:          record.UserID,
		Type:            string(record.Type),
		DurationMinutes: record.DurationMinutes,
		CaloriesBurned:  record.CaloriesBurned,
		ExerciseTime:    record.ExerciseTime,
		CreatedAt:       record.CreatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// DietRecordModel represents the diet_records table in the database.
type DietRecordModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodName     string          `gorm:"type:varchar(100);not null"`
	MealType     string          `gorm:"type:varchar(20);not null;index"`
	PortionGrams decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	Calories     decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	EatenAt      time.Time       `gorm:"not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DietRecordModel.
func (DietRecordModel) TableName() string {
	return "diet_records"
}

// ToEntity converts a DietRecordModel to a domain DietRecord entity.
func (m *DietRecordModel) ToEntity() *entity.DietRecord {
	return &entity.DietRecord{
		ID:           m.ID,
		UserID:       m.UserID,
		FoodName:     m.FoodName,
		MealType:     entity.MealType(m.MealType),
		PortionGrams: m.PortionGrams,
		Calories:     m.Calories,
		EatenAt:      m.EatenAt,
		CreatedAt:    m.CreatedAt,
	}
}

// DietRecordFromEntity creates a DietRecordModel from a domain DietRecord entity.
func DietRecordFromEntity(record *entity.DietRecord) *DietRecordModel {
	return &DietRecordModel{
		ID:           record.ID,
		UserID:       record.UserID,
		FoodName:     record.FoodName,
		MealType:     string(record.MealType),
		PortionGrams: record.PortionGrams,
		Calories:     record.Calories,
		EatenAt:      record.EatenAt,
		CreatedAt:    record.CreatedAt,
	}
}

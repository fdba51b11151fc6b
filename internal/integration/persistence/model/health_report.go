// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// HealthReportModel represents the health_reports table in the database.
type HealthReportModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	AvgSleepHours     float64        `gorm:"type:decimal(5,2);not null;default:0"`
	AvgCaloriesBurned float64        `gorm:"type:decimal(8,2);not null;default:0"`
	AvgCaloriesEaten  float64        `gorm:"type:decimal(8,2);not null;default:0"`
	BMI               float64        `gorm:"type:decimal(5,2);not null;default:0"`
	AdviceLines       pq.StringArray `gorm:"type:text[]"`
	GeneratedAt       time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the HealthReportModel.
func (HealthReportModel) TableName() string {
	return "health_reports"
}

// ToEntity converts a HealthReportModel to a domain HealthReport entity.
func (m *HealthReportModel) ToEntity() *entity.HealthReport {
	return &entity.HealthReport{
		ID:                m.ID,
		UserID:            m.UserID,
		AvgSleepHours:     m.AvgSleepHours,
		AvgCaloriesBurned: m.AvgCaloriesBurned,
		AvgCaloriesEaten:  m.AvgCaloriesEaten,
		BMI:               m.BMI,
		AdviceLines:       []string(m.AdviceLines),
		GeneratedAt:       m.GeneratedAt,
	}
}

// HealthReportFromEntity creates a HealthReportModel from a domain HealthReport entity.
func HealthReportFromEntity(report *entity.HealthReport) *HealthReportModel {
	return &HealthReportModel{
		ID:                report.ID,
		UserID:            report.UserID,
		AvgSleepHours:     report.AvgSleepHours,
		AvgCaloriesBurned: report.AvgCaloriesBurned,
		AvgCaloriesEaten:  report.AvgCaloriesEaten,
		BMI:               report.BMI,
		AdviceLines:       pq.StringArray(report.AdviceLines),
		GeneratedAt:       report.GeneratedAt,
	}
}

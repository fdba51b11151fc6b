// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthReport is a snapshot of trailing-week averages with the advice lines
// derived from them.
type HealthReport struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	AvgSleepHours     float64
	AvgCaloriesBurned float64
	AvgCaloriesEaten  float64
	BMI               float64
	AdviceLines       []string
	GeneratedAt       time.Time
}

// NewHealthReport creates a HealthReport entity.
func NewHealthReport(userID uuid.UUID, avgSleepHours, avgCaloriesBurned, avgCaloriesEaten, bmi float64, adviceLines []string) *HealthReport {
	return &HealthReport{
		ID:                uuid.New(),
		UserID:            userID,
		AvgSleepHours:     avgSleepHours,
		AvgCaloriesBurned: avgCaloriesBurned,
		AvgCaloriesEaten:  avgCaloriesEaten,
		BMI:               bmi,
		AdviceLines:       adviceLines,
		GeneratedAt:       time.Now().UTC(),
	}
}

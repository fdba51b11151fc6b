// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseType represents the kind of exercise performed.
type ExerciseType string

const (
	ExerciseTypeRunning  ExerciseType = "running"
	ExerciseTypeSwimming ExerciseType = "swimming"
	ExerciseTypeYoga     ExerciseType = "yoga"
	ExerciseTypeCycling  ExerciseType = "cycling"
	ExerciseTypeOther    ExerciseType = "other"
)

// metValues maps exercise types to their metabolic equivalent of task.
var metValues = map[ExerciseType]float64{
	ExerciseTypeRunning:  7.0,
	ExerciseTypeSwimming: 8.0,
	ExerciseTypeYoga:     2.5,
	ExerciseTypeCycling:  6.8,
}

// MET returns the metabolic equivalent for the exercise type and whether one
// is defined. The "other" type has no MET value and requires manual calories.
func (t ExerciseType) MET() (float64, bool) {
	met, ok := metValues[t]
	return met, ok
}

// IsValid reports whether the exercise type is one of the known values.
func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseTypeRunning, ExerciseTypeSwimming, ExerciseTypeYoga, ExerciseTypeCycling, ExerciseTypeOther:
		return true
	}
	return false
}

// ExerciseRecord represents a single exercise session.
type ExerciseRecord struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Type            ExerciseType
	DurationMinutes float64
	CaloriesBurned  float64
	ExerciseTime    time.Time
	CreatedAt       time.Time
}

// NewExerciseRecord creates an ExerciseRecord.
func NewExerciseRecord(userID uuid.UUID, exerciseType ExerciseType, durationMinutes, caloriesBurned float64, exerciseTime time.Time) *ExerciseRecord {
	return &ExerciseRecord{
		ID:              uuid.New(),
		UserID:          userID,
		Type:            exerciseType,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
		ExerciseTime:    exerciseTime,
		CreatedAt:       time.Now().UTC(),
	}
}

// Date returns the calendar date the exercise took place on.
func (e *ExerciseRecord) Date() time.Time {
	return truncateToDate(e.ExerciseTime)
}

// EstimateCaloriesBurned computes a MET-based calorie estimate for a session.
func EstimateCaloriesBurned(met, durationMinutes, weightKg float64) float64 {
	return durationMinutes * met * 3.5 * weightKg / 200
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalPeriod represents the evaluation window for an exercise goal.
type GoalPeriod string

const (
	GoalPeriodWeekly GoalPeriod = "weekly"
)

// ExerciseGoalType represents which quantity an exercise goal targets.
type ExerciseGoalType string

const (
	ExerciseGoalDuration  ExerciseGoalType = "duration"
	ExerciseGoalFrequency ExerciseGoalType = "frequency"
	ExerciseGoalCalories  ExerciseGoalType = "calories"
)

// IsValid reports whether the goal type is one of the known values.
func (t ExerciseGoalType) IsValid() bool {
	switch t {
	case ExerciseGoalDuration, ExerciseGoalFrequency, ExerciseGoalCalories:
		return true
	}
	return false
}

// GeneralGoal holds a user's overall sleep and calorie intake targets.
// Each user has at most one.
type GeneralGoal struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	TargetSleepHours    float64
	TargetCalorieIntake float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewGeneralGoal creates a GeneralGoal entity.
func NewGeneralGoal(userID uuid.UUID, targetSleepHours, targetCalorieIntake float64) *GeneralGoal {
	now := time.Now().UTC()
	return &GeneralGoal{
		ID:                  uuid.New(),
		UserID:              userID,
		TargetSleepHours:    targetSleepHours,
		TargetCalorieIntake: targetCalorieIntake,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ExerciseGoal represents a weekly exercise target, optionally restricted to
// a single exercise type.
type ExerciseGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	GoalType     ExerciseGoalType
	TargetValue  float64
	ExerciseType *ExerciseType // nil means all exercise types count
	Period       GoalPeriod
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewExerciseGoal creates an ExerciseGoal entity.
func NewExerciseGoal(userID uuid.UUID, goalType ExerciseGoalType, targetValue float64, exerciseType *ExerciseType) *ExerciseGoal {
	now := time.Now().UTC()
	return &ExerciseGoal{
		ID:           uuid.New(),
		UserID:       userID,
		GoalType:     goalType,
		TargetValue:  targetValue,
		ExerciseType: exerciseType,
		Period:       GoalPeriodWeekly,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

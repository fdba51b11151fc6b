// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// GeneralGoalModel represents the general_goals table in the database.
// Each user has at most one row.
type GeneralGoalModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TargetSleepHours    float64   `gorm:"type:decimal(4,1);not null;default:0"`
	TargetCalorieIntake float64   `gorm:"type:decimal(8,2);not null;default:0"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the GeneralGoalModel.
func (GeneralGoalModel) TableName() string {
	return "general_goals"
}

// ToEntity converts a GeneralGoalModel to a domain GeneralGoal entity.
func (m *GeneralGoalModel) ToEntity() *entity.GeneralGoal {
	return &entity.GeneralGoal{
		ID:                  m.ID,
		UserID:              m.UserID,
		TargetSleepHours:    m.TargetSleepHours,
		TargetCalorieIntake: m.TargetCalorieIntake,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GeneralGoalFromEntity creates a GeneralGoalModel from a domain GeneralGoal entity.
func GeneralGoalFromEntity(goal *entity.GeneralGoal) *GeneralGoalModel {
	return &GeneralGoalModel{
		ID:                  goal.ID,
		UserID:              goal.UserID,
		TargetSleepHours:    goal.TargetSleepHours,
		TargetCalorieIntake: goal.TargetCalorieIntake,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}

// ExerciseGoalModel represents the exercise_goals table in the database.
type ExerciseGoalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	GoalType     string    `gorm:"type:varchar(20);not null"`
	TargetValue  float64   `gorm:"type:decimal(8,2);not null"`
	ExerciseType *string   `gorm:"type:varchar(20)"` // NULL means all exercise types count
	Period       string    `gorm:"type:varchar(10);not null;default:'weekly'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExerciseGoalModel.
func (ExerciseGoalModel) TableName() string {
	return "exercise_goals"
}

// ToEntity converts an ExerciseGoalModel to a domain ExerciseGoal entity.
func (m *ExerciseGoalModel) ToEntity() *entity.ExerciseGoal {
	var exerciseType *entity.ExerciseType
	if m.ExerciseType != nil {
		t := entity.ExerciseType(*m.ExerciseType)
		exerciseType = &t
	}

	return &entity.ExerciseGoal{
		ID:           m.ID,
		UserID:       m.UserID,
		GoalType:     entity.ExerciseGoalType(m.GoalType),
		TargetValue:  m.TargetValue,
		ExerciseType: exerciseType,
		Period:       entity.GoalPeriod(m.Period),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ExerciseGoalFromEntity creates an ExerciseGoalModel from a domain ExerciseGoal entity.
func ExerciseGoalFromEntity(goal *entity.ExerciseGoal) *ExerciseGoalModel {
	var exerciseType *string
	if goal.ExerciseType != nil {
		t := string(*goal.ExerciseType)
		exerciseType = &t
	}

	return &ExerciseGoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		GoalType:     string(goal.GoalType),
		TargetValue:  goal.TargetValue,
		ExerciseType: exerciseType,
		Period:       string(goal.Period),
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}

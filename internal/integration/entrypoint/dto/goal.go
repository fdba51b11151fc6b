// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// UpsertGeneralGoalRequest represents the request body for setting the general goal.
type UpsertGeneralGoalRequest struct {
	TargetSleepHours    float64 `json:"target_sleep_hours" binding:"gte=0,lte=24"`
	TargetCalorieIntake float64 `json:"target_calorie_intake" binding:"gte=0"`
}

// GeneralGoalResponse represents the general goal in API responses.
type GeneralGoalResponse struct {
	ID                  string    `json:"id"`
	TargetSleepHours    float64   `json:"target_sleep_hours"`
	TargetCalorieIntake float64   `json:"target_calorie_intake"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToGeneralGoalResponse converts a domain GeneralGoal entity to a response DTO.
func ToGeneralGoalResponse(g *entity.GeneralGoal) GeneralGoalResponse {
	return GeneralGoalResponse{
		ID:                  g.ID.String(),
		TargetSleepHours:    g.TargetSleepHours,
		TargetCalorieIntake: g.TargetCalorieIntake,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

// CreateExerciseGoalRequest represents the request body for exercise goal creation.
type CreateExerciseGoalRequest struct {
	GoalType     string  `json:"goal_type" binding:"required,oneof=duration frequency calories"`
	TargetValue  float64 `json:"target_value" binding:"required,gt=0"`
	ExerciseType *string `json:"exercise_type,omitempty" binding:"omitempty,oneof=running swimming yoga cycling other"`
}

// ExerciseGoalResponse represents a single exercise goal in API responses.
type ExerciseGoalResponse struct {
	ID           string    `json:"id"`
	GoalType     string    `json:"goal_type"`
	TargetValue  float64   `json:"target_value"`
	ExerciseType *string   `json:"exercise_type,omitempty"`
	Period       string    `json:"period"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExerciseGoalListResponse represents the response for listing exercise goals.
type ExerciseGoalListResponse struct {
	Goals []ExerciseGoalResponse `json:"goals"`
}

// ToExerciseGoalResponse converts a domain ExerciseGoal entity to a response DTO.
func ToExerciseGoalResponse(g *entity.ExerciseGoal) ExerciseGoalResponse {
	response := ExerciseGoalResponse{
		ID:          g.ID.String(),
		GoalType:    string(g.GoalType),
		TargetValue: g.TargetValue,
		Period:      string(g.Period),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	if g.ExerciseType != nil {
		t := string(*g.ExerciseType)
		response.ExerciseType = &t
	}

	return response
}

// ToExerciseGoalListResponse converts exercise goals to a list response.
func ToExerciseGoalListResponse(goals []*entity.ExerciseGoal) ExerciseGoalListResponse {
	result := make([]ExerciseGoalResponse, len(goals))
	for i, g := range goals {
		result[i] = ToExerciseGoalResponse(g)
	}
	return ExerciseGoalListResponse{Goals: result}
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/health-tracker/backend/internal/application/usecase/record"
	"github.com/health-tracker/backend/internal/domain/entity"
)

// CreateSleepRecordRequest represents the request body for sleep record creation.
type CreateSleepRecordRequest struct {
	SleepTime  time.Time `json:"sleep_time" binding:"required"`
	WakeupTime time.Time `json:"wakeup_time" binding:"required"`
}

// SleepRecordResponse represents a single sleep record in API responses.
type SleepRecordResponse struct {
	ID            string    `json:"id"`
	SleepTime     time.Time `json:"sleep_time"`
	WakeupTime    time.Time `json:"wakeup_time"`
	DurationHours float64   `json:"duration_hours"`
	CreatedAt     time.Time `json:"created_at"`
}

// SleepRecordListResponse represents the response for listing sleep records.
type SleepRecordListResponse struct {
	Records []SleepRecordResponse `json:"records"`
}

// ToSleepRecordResponse converts a domain SleepRecord entity to a response DTO.
func ToSleepRecordResponse(r *entity.SleepRecord) SleepRecordResponse {
	return SleepRecordResponse{
		ID:            r.ID.String(),
		SleepTime:     r.SleepTime,
		WakeupTime:    r.WakeupTime,
		DurationHours: r.DurationHours,
		CreatedAt:     r.CreatedAt,
	}
}

// ToSleepRecordListResponse converts sleep records to a list response.
func ToSleepRecordListResponse(records []*entity.SleepRecord) SleepRecordListResponse {
	result := make([]SleepRecordResponse, len(records))
	for i, r := range records {
		result[i] = ToSleepRecordResponse(r)
	}
	return SleepRecordListResponse{Records: result}
}

// CreateExerciseRecordRequest represents the request body for exercise record creation.
type CreateExerciseRecordRequest struct {
	Type            string    `json:"type" binding:"required,oneof=running swimming yoga cycling other"`
	DurationMinutes float64   `json:"duration_minutes" binding:"required,gt=0"`
	CaloriesBurned  float64   `json:"calories_burned" binding:"omitempty,gt=0"`
	ExerciseTime    time.Time `json:"exercise_time" binding:"required"`
}

// ExerciseRecordResponse represents a single exercise record in API responses.
type ExerciseRecordResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	DurationMinutes float64   `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	ExerciseTime    time.Time `json:"exercise_time"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExerciseRecordListResponse represents the response for listing exercise records.
type ExerciseRecordListResponse struct {
	Records []ExerciseRecordResponse `json:"records"`
}

// ToExerciseRecordResponse converts a domain ExerciseRecord entity to a response DTO.
func ToExerciseRecordResponse(r *entity.ExerciseRecord) ExerciseRecordResponse {
	return ExerciseRecordResponse{
		ID:              r.ID.String(),
		Type:            string(r.Type),
		DurationMinutes: r.DurationMinutes,
		CaloriesBurned:  r.CaloriesBurned,
		ExerciseTime:    r.ExerciseTime,
		CreatedAt:       r.CreatedAt,
	}
}

// ToExerciseRecordListResponse converts exercise records to a list response.
func ToExerciseRecordListResponse(records []*entity.ExerciseRecord) ExerciseRecordListResponse {
	result := make([]ExerciseRecordResponse, len(records))
	for i, r := range records {
		result[i] = ToExerciseRecordResponse(r)
	}
	return ExerciseRecordListResponse{Records: result}
}

// CreateDietRecordRequest represents the request body for diet record creation.
type CreateDietRecordRequest struct {
	FoodName       string          `json:"food_name" binding:"required,min=1,max=100"`
	Custom         bool            `json:"custom"`
	MealType       string          `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	PortionGrams   decimal.Decimal `json:"portion_grams"`
	ManualCalories decimal.Decimal `json:"manual_calories"`
	EatenAt        time.Time       `json:"eaten_at" binding:"required"`
}

// DietRecordResponse represents a single diet record in API responses.
type DietRecordResponse struct {
	ID           string          `json:"id"`
	FoodName     string          `json:"food_name"`
	MealType     string          `json:"meal_type"`
	PortionGrams decimal.Decimal `json:"portion_grams"`
	Calories     decimal.Decimal `json:"calories"`
	EatenAt      time.Time       `json:"eaten_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DietRecordListResponse represents the response for listing diet records.
type DietRecordListResponse struct {
	Records []DietRecordResponse `json:"records"`
}

// ToDietRecordResponse converts a domain DietRecord entity to a response DTO.
func ToDietRecordResponse(r *entity.DietRecord) DietRecordResponse {
	return DietRecordResponse{
		ID:           r.ID.String(),
		FoodName:     r.FoodName,
		MealType:     string(r.MealType),
		PortionGrams: r.PortionGrams,
		Calories:     r.Calories,
		EatenAt:      r.EatenAt,
		CreatedAt:    r.CreatedAt,
	}
}

// ToDietRecordListResponse converts diet records to a list response.
func ToDietRecordListResponse(records []*entity.DietRecord) DietRecordListResponse {
	result := make([]DietRecordResponse, len(records))
	for i, r := range records {
		result[i] = ToDietRecordResponse(r)
	}
	return DietRecordListResponse{Records: result}
}

// ExerciseTypeStatResponse represents one exercise type's weekly total.
type ExerciseTypeStatResponse struct {
	Type         string  `json:"type"`
	TotalMinutes float64 `json:"total_minutes"`
}

// WeeklyExerciseStatsResponse represents this week's exercise totals by type.
type WeeklyExerciseStatsResponse struct {
	WeekStart string                     `json:"week_start"`
	Stats     []ExerciseTypeStatResponse `json:"stats"`
}

// ToWeeklyExerciseStatsResponse converts the use case output to a response DTO.
func ToWeeklyExerciseStatsResponse(output *record.WeeklyExerciseStatsOutput) WeeklyExerciseStatsResponse {
	stats := make([]ExerciseTypeStatResponse, len(output.Stats))
	for i, s := range output.Stats {
		stats[i] = ExerciseTypeStatResponse{
			Type:         string(s.Type),
			TotalMinutes: s.TotalMinutes,
		}
	}
	return WeeklyExerciseStatsResponse{
		WeekStart: output.WeekStart.Format("2006-01-02"),
		Stats:     stats,
	}
}

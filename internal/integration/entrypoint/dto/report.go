// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	SendEmail bool `json:"send_email"`
}

// HealthReportResponse represents a stored health report in API responses.
type HealthReportResponse struct {
	ID                string    `json:"id"`
	AvgSleepHours     float64   `json:"avg_sleep_hours"`
	AvgCaloriesBurned float64   `json:"avg_calories_burned"`
	AvgCaloriesEaten  float64   `json:"avg_calories_eaten"`
	BMI               float64   `json:"bmi,omitempty"`
	AdviceLines       []string  `json:"advice_lines"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// HealthReportListResponse represents the response for listing report history.
type HealthReportListResponse struct {
	Reports []HealthReportResponse `json:"reports"`
}

// ToHealthReportResponse converts a domain HealthReport entity to a response DTO.
func ToHealthReportResponse(r *entity.HealthReport) HealthReportResponse {
	return HealthReportResponse{
		ID:                r.ID.String(),
		AvgSleepHours:     r.AvgSleepHours,
		AvgCaloriesBurned: r.AvgCaloriesBurned,
		AvgCaloriesEaten:  r.AvgCaloriesEaten,
		BMI:               r.BMI,
		AdviceLines:       r.AdviceLines,
		GeneratedAt:       r.GeneratedAt,
	}
}

// ToHealthReportListResponse converts health reports to a list response.
func ToHealthReportListResponse(reports []*entity.HealthReport) HealthReportListResponse {
	result := make([]HealthReportResponse, len(reports))
	for i, r := range reports {
		result[i] = ToHealthReportResponse(r)
	}
	return HealthReportListResponse{Reports: result}
}

// AdviceResponse represents the AI advice in API responses.
type AdviceResponse struct {
	Advice string `json:"advice"`
	Cached bool   `json:"cached"`
}

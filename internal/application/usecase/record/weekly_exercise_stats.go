// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/application/usecase/analytics"
	"github.com/health-tracker/backend/internal/domain/entity"
)

// WeeklyExerciseStatsInput represents the input for per-type weekly stats.
type WeeklyExerciseStatsInput struct {
	UserID    uuid.UUID
	Reference time.Time // zero value means now
}

// ExerciseTypeStat holds this week's total minutes for one exercise type.
type ExerciseTypeStat struct {
	Type         entity.ExerciseType `json:"type"`
	TotalMinutes float64             `json:"total_minutes"`
}

// WeeklyExerciseStatsOutput represents the output of per-type weekly stats.
type WeeklyExerciseStatsOutput struct {
	WeekStart time.Time          `json:"week_start"`
	Stats     []ExerciseTypeStat `json:"stats"`
}

// WeeklyExerciseStatsUseCase sums this week's exercise minutes by type.
type WeeklyExerciseStatsUseCase struct {
	exerciseRepo adapter.ExerciseRecordRepository
}

// NewWeeklyExerciseStatsUseCase creates a new WeeklyExerciseStatsUseCase instance.
func NewWeeklyExerciseStatsUseCase(exerciseRepo adapter.ExerciseRecordRepository) *WeeklyExerciseStatsUseCase {
	return &WeeklyExerciseStatsUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute computes the stats for the week containing the reference date.
func (uc *WeeklyExerciseStatsUseCase) Execute(ctx context.Context, input WeeklyExerciseStatsInput) (*WeeklyExerciseStatsOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	weekStart := analytics.WeekStartDate(reference)
	weekEnd := weekStart.AddDate(0, 0, 7)

	records, err := uc.exerciseRepo.FindByUserIDInRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise records: %w", err)
	}

	totals := make(map[entity.ExerciseType]float64)
	for _, r := range records {
		totals[r.Type] += r.DurationMinutes
	}

	stats := make([]ExerciseTypeStat, 0, len(totals))
	for exerciseType, minutes := range totals {
		stats = append(stats, ExerciseTypeStat{Type: exerciseType, TotalMinutes: minutes})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Type < stats[j].Type
	})

	return &WeeklyExerciseStatsOutput{
		WeekStart: weekStart,
		Stats:     stats,
	}, nil
}

package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

func TestSleepGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		avg      float64
		target   float64
		expected float64
	}{
		{name: "halfway to target", avg: 4, target: 8, expected: 50},
		{name: "meeting target exactly", avg: 8, target: 8, expected: 100},
		{name: "oversleeping exceeds 100", avg: 9, target: 8, expected: 112.5},
		{name: "zero target yields zero", avg: 8, target: 0, expected: 0},
		{name: "negative target yields zero", avg: 8, target: -1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepGoalProgress(tt.avg, tt.target)
			if !almostEqual(got.Percent, tt.expected) {
				t.Errorf("expected %f%%, got %f%%", tt.expected, got.Percent)
			}
		})
	}
}

func TestCalorieGoalProgress(t *testing.T) {
	tests := []struct {
		name     string
		avg      float64
		target   float64
		expected float64
	}{
		{name: "eating half the budget doubles the score", avg: 1000, target: 2000, expected: 200},
		{name: "eating the budget exactly", avg: 2000, target: 2000, expected: 100},
		{name: "overeating drops below 100", avg: 4000, target: 2000, expected: 50},
		// No intake at all scores a full 100, the budget is untouched.
		{name: "zero intake scores 100", avg: 0, target: 2000, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalorieGoalProgress(tt.avg, tt.target)
			if !almostEqual(got.Percent, tt.expected) {
				t.Errorf("expected %f%%, got %f%%", tt.expected, got.Percent)
			}
		})
	}
}

func TestEvaluateExerciseGoal(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2025, time.March, 11, 18, 0, 0, 0, time.UTC)
	records := []*entity.ExerciseRecord{
		entity.NewExerciseRecord(userID, entity.ExerciseTypeRunning, 30, 220, at),
		entity.NewExerciseRecord(userID, entity.ExerciseTypeRunning, 45, 330, at.AddDate(0, 0, 1)),
		entity.NewExerciseRecord(userID, entity.ExerciseTypeYoga, 60, 160, at.AddDate(0, 0, 2)),
	}

	running := entity.ExerciseTypeRunning

	tests := []struct {
		name            string
		goal            *entity.ExerciseGoal
		expectedCurrent float64
		expectedPercent float64
	}{
		{
			name:            "duration goal over all types",
			goal:            entity.NewExerciseGoal(userID, entity.ExerciseGoalDuration, 270, nil),
			expectedCurrent: 135,
			expectedPercent: 50,
		},
		{
			name:            "duration goal filtered to running",
			goal:            entity.NewExerciseGoal(userID, entity.ExerciseGoalDuration, 150, &running),
			expectedCurrent: 75,
			expectedPercent: 50,
		},
		{
			name:            "frequency goal counts sessions",
			goal:            entity.NewExerciseGoal(userID, entity.ExerciseGoalFrequency, 6, nil),
			expectedCurrent: 3,
			expectedPercent: 50,
		},
		{
			name:            "calories goal sums burned",
			goal:            entity.NewExerciseGoal(userID, entity.ExerciseGoalCalories, 710, nil),
			expectedCurrent: 710,
			expectedPercent: 100,
		},
		{
			name:            "zero target yields zero percent",
			goal:            entity.NewExerciseGoal(userID, entity.ExerciseGoalDuration, 0, nil),
			expectedCurrent: 135,
			expectedPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateExerciseGoal(tt.goal, records)
			if !almostEqual(got.Current, tt.expectedCurrent) {
				t.Errorf("expected current %f, got %f", tt.expectedCurrent, got.Current)
			}
			if !almostEqual(got.Percent, tt.expectedPercent) {
				t.Errorf("expected %f%%, got %f%%", tt.expectedPercent, got.Percent)
			}
		})
	}
}

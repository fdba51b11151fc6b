package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// exercisesOf builds one exercise record per duration on consecutive days
// from 2025-03-10.
func exercisesOf(t *testing.T, minutes []float64) []*entity.ExerciseRecord {
	t.Helper()
	records := make([]*entity.ExerciseRecord, 0, len(minutes))
	for i, m := range minutes {
		at := time.Date(2025, time.March, 10+i, 18, 0, 0, 0, time.UTC)
		records = append(records, entity.NewExerciseRecord(uuid.New(), entity.ExerciseTypeRunning, m, m*7, at))
	}
	return records
}

func TestAnalyzeExerciseSleepCorrelationMinimums(t *testing.T) {
	tests := []struct {
		name         string
		exercise     []*entity.ExerciseRecord
		sleep        []*entity.SleepRecord
		expectedCode domainerror.AnalyticsErrorCode
	}{
		{
			name:         "too few exercise records",
			exercise:     exercisesOf(t, []float64{30, 30, 30, 30}),
			sleep:        nightsOf(t, []float64{7, 7, 7, 7, 7}),
			expectedCode: domainerror.ErrCodeInsufficientExerciseData,
		},
		{
			name:         "too few sleep records",
			exercise:     exercisesOf(t, []float64{30, 30, 30, 30, 30}),
			sleep:        nightsOf(t, []float64{7, 7, 7, 7}),
			expectedCode: domainerror.ErrCodeInsufficientSleepData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeExerciseSleepCorrelation(tt.exercise, tt.sleep)
			if err == nil {
				t.Fatal("expected an error")
			}
			var analyticsErr *domainerror.AnalyticsError
			if !errors.As(err, &analyticsErr) {
				t.Fatalf("expected AnalyticsError, got %T", err)
			}
			if analyticsErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, analyticsErr.Code)
			}
		})
	}
}

func TestAnalyzeExerciseSleepCorrelationTooFewMatchedDays(t *testing.T) {
	// Five records each, but the exercise days never line up with the sleep
	// start days enough times.
	exercise := make([]*entity.ExerciseRecord, 0, 5)
	for i := 0; i < 5; i++ {
		at := time.Date(2025, time.April, 1+i, 18, 0, 0, 0, time.UTC)
		exercise = append(exercise, entity.NewExerciseRecord(uuid.New(), entity.ExerciseTypeYoga, 30, 100, at))
	}
	sleep := make([]*entity.SleepRecord, 0, 5)
	for i := 0; i < 5; i++ {
		start := time.Date(2025, time.May, 1+i, 23, 0, 0, 0, time.UTC)
		sleep = append(sleep, entity.NewSleepRecord(uuid.New(), start, start.Add(7*time.Hour)))
	}

	_, err := AnalyzeExerciseSleepCorrelation(exercise, sleep)
	if err == nil {
		t.Fatal("expected an error")
	}
	var analyticsErr *domainerror.AnalyticsError
	if !errors.As(err, &analyticsErr) {
		t.Fatalf("expected AnalyticsError, got %T", err)
	}
	if analyticsErr.Code != domainerror.ErrCodeInsufficientMatchedDays {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInsufficientMatchedDays, analyticsErr.Code)
	}
}

func TestAnalyzeExerciseSleepCorrelationPerfectPositive(t *testing.T) {
	// Sleep hours scale linearly with exercise minutes.
	exercise := exercisesOf(t, []float64{10, 20, 30, 40, 50})
	sleep := make([]*entity.SleepRecord, 0, 5)
	for i, hours := range []float64{6.1, 6.2, 6.3, 6.4, 6.5} {
		start := time.Date(2025, time.March, 10+i, 22, 0, 0, 0, time.UTC)
		sleep = append(sleep, entity.NewSleepRecord(uuid.New(), start, start.Add(time.Duration(hours*float64(time.Hour)))))
	}

	result, err := AnalyzeExerciseSleepCorrelation(exercise, sleep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.Coefficient-1.0) > 1e-6 {
		t.Errorf("expected coefficient 1.0, got %f", result.Coefficient)
	}
	if result.MatchedDays != 5 {
		t.Errorf("expected 5 matched days, got %d", result.MatchedDays)
	}
	if result.Interpretation != "strong positive" {
		t.Errorf("expected strong positive, got %q", result.Interpretation)
	}
	// 0.1 hours more sleep per 10 minutes of exercise.
	if math.Abs(result.Slope-0.01) > 1e-6 {
		t.Errorf("expected slope 0.01, got %f", result.Slope)
	}
}

func TestAnalyzeExerciseSleepCorrelationZeroVariance(t *testing.T) {
	// Identical sleep every night leaves nothing to correlate with.
	exercise := exercisesOf(t, []float64{10, 20, 30, 40, 50})
	sleep := make([]*entity.SleepRecord, 0, 5)
	for i := 0; i < 5; i++ {
		start := time.Date(2025, time.March, 10+i, 22, 0, 0, 0, time.UTC)
		sleep = append(sleep, entity.NewSleepRecord(uuid.New(), start, start.Add(7*time.Hour)))
	}

	result, err := AnalyzeExerciseSleepCorrelation(exercise, sleep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Coefficient != 0 {
		t.Errorf("expected coefficient 0, got %f", result.Coefficient)
	}
	if result.Interpretation != "weak negative" {
		t.Errorf("expected weak negative for r=0, got %q", result.Interpretation)
	}
}

func TestInterpretCorrelation(t *testing.T) {
	tests := []struct {
		name     string
		r        float64
		expected string
	}{
		{name: "far above strong threshold", r: 0.9, expected: "strong positive"},
		{name: "exactly 0.7 is moderate", r: 0.7, expected: "moderate positive"},
		{name: "exactly 0.3 is weak positive", r: 0.3, expected: "weak positive"},
		{name: "barely positive", r: 0.0001, expected: "weak positive"},
		{name: "zero falls negative", r: 0, expected: "weak negative"},
		{name: "exactly -0.3 is moderate negative", r: -0.3, expected: "moderate negative"},
		{name: "exactly -0.7 is strong negative", r: -0.7, expected: "strong negative"},
		{name: "far below strong threshold", r: -0.95, expected: "strong negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpretCorrelation(tt.r)
			if got != tt.expected {
				t.Errorf("r=%f: expected %q, got %q", tt.r, tt.expected, got)
			}
		})
	}
}

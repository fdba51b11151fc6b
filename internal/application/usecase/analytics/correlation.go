package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// MinCorrelationRecords is the minimum number of records per metric, and of
// matched days, needed to analyze a correlation.
const MinCorrelationRecords = 5

// CorrelationResult holds the Pearson correlation of daily exercise minutes
// against daily sleep hours.
type CorrelationResult struct {
	Coefficient    float64 `json:"coefficient"`
	Slope          float64 `json:"slope"`
	MatchedDays    int     `json:"matched_days"`
	Interpretation string  `json:"interpretation"`
}

// AnalyzeExerciseSleepCorrelation joins daily exercise minutes with daily
// sleep hours and computes their Pearson correlation. Only days with both
// metrics count. Sleep is grouped by the date the session started on; the
// weekly aggregator uses the wake date instead, and the two deliberately
// disagree for sessions spanning midnight.
func AnalyzeExerciseSleepCorrelation(exerciseRecords []*entity.ExerciseRecord, sleepRecords []*entity.SleepRecord) (*CorrelationResult, error) {
	if len(exerciseRecords) < MinCorrelationRecords {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInsufficientExerciseData,
			fmt.Sprintf("need at least %d exercise records to analyze correlation", MinCorrelationRecords),
			domainerror.ErrInsufficientData,
		)
	}
	if len(sleepRecords) < MinCorrelationRecords {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInsufficientSleepData,
			fmt.Sprintf("need at least %d sleep records to analyze correlation", MinCorrelationRecords),
			domainerror.ErrInsufficientData,
		)
	}

	exerciseByDay := make(map[string]float64)
	for _, r := range exerciseRecords {
		exerciseByDay[dateOf(r.ExerciseTime).Format("2006-01-02")] += r.DurationMinutes
	}

	sleepByDay := make(map[string]float64)
	for _, r := range sleepRecords {
		sleepByDay[dateOf(r.SleepTime).Format("2006-01-02")] += r.DurationHours
	}

	matched := make([]string, 0, len(exerciseByDay))
	for day := range exerciseByDay {
		if _, ok := sleepByDay[day]; ok {
			matched = append(matched, day)
		}
	}
	sort.Strings(matched)

	if len(matched) < MinCorrelationRecords {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInsufficientMatchedDays,
			fmt.Sprintf("need at least %d days with both exercise and sleep records to analyze correlation", MinCorrelationRecords),
			domainerror.ErrInsufficientData,
		)
	}

	xs := make([]float64, len(matched))
	ys := make([]float64, len(matched))
	for i, day := range matched {
		xs[i] = exerciseByDay[day]
		ys[i] = sleepByDay[day]
	}

	coefficient := pearson(xs, ys)
	slope, _ := linearFit(xs, ys)

	return &CorrelationResult{
		Coefficient:    coefficient,
		Slope:          slope,
		MatchedDays:    len(matched),
		Interpretation: interpretCorrelation(coefficient),
	}, nil
}

// interpretCorrelation maps a correlation coefficient to a qualitative label.
// Zero sits in the weak negative bucket.
func interpretCorrelation(r float64) string {
	switch {
	case r > 0.7:
		return "strong positive"
	case r > 0.3:
		return "moderate positive"
	case r > 0:
		return "weak positive"
	case r > -0.3:
		return "weak negative"
	case r > -0.7:
		return "moderate negative"
	default:
		return "strong negative"
	}
}

// AnalyzeCorrelationInput represents the input for correlation analysis.
type AnalyzeCorrelationInput struct {
	UserID uuid.UUID
}

// AnalyzeCorrelationOutput represents the output of correlation analysis.
type AnalyzeCorrelationOutput struct {
	Correlation *CorrelationResult `json:"correlation"`
}

// AnalyzeCorrelationUseCase handles exercise/sleep correlation analysis.
type AnalyzeCorrelationUseCase struct {
	exerciseRepo adapter.ExerciseRecordRepository
	sleepRepo    adapter.SleepRecordRepository
}

// NewAnalyzeCorrelationUseCase creates a new AnalyzeCorrelationUseCase instance.
func NewAnalyzeCorrelationUseCase(exerciseRepo adapter.ExerciseRecordRepository, sleepRepo adapter.SleepRecordRepository) *AnalyzeCorrelationUseCase {
	return &AnalyzeCorrelationUseCase{
		exerciseRepo: exerciseRepo,
		sleepRepo:    sleepRepo,
	}
}

// Execute analyzes the correlation over the user's full history.
func (uc *AnalyzeCorrelationUseCase) Execute(ctx context.Context, input AnalyzeCorrelationInput) (*AnalyzeCorrelationOutput, error) {
	exerciseRecords, err := uc.exerciseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise records: %w", err)
	}

	sleepRecords, err := uc.sleepRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep records: %w", err)
	}

	result, err := AnalyzeExerciseSleepCorrelation(exerciseRecords, sleepRecords)
	if err != nil {
		return nil, err
	}

	return &AnalyzeCorrelationOutput{Correlation: result}, nil
}

package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// MinTrendRecords is the minimum number of sleep records needed to fit a trend.
const MinTrendRecords = 5

// DefaultForecastDays is the forecast horizon used when none is given.
const DefaultForecastDays = 7

// TrendPoint is a fitted or forecast sleep duration for one day.
type TrendPoint struct {
	Date     time.Time `json:"date"`
	DayIndex int       `json:"day_index"`
	Hours    float64   `json:"hours"`
}

// SleepTrend is the result of an ordinary least squares fit over sleep
// durations, with the fitted line replayed over the observed day range and
// extended over the forecast horizon.
type SleepTrend struct {
	Slope      float64      `json:"slope"`
	Intercept  float64      `json:"intercept"`
	RSquared   float64      `json:"r_squared"`
	Historical []TrendPoint `json:"historical"`
	Forecast   []TrendPoint `json:"forecast"`
}

// FitSleepTrend fits a linear trend to sleep durations against days since the
// first record and forecasts the next horizonDays. Records are ordered by the
// calendar date of the sleep start, ties keeping their original order.
func FitSleepTrend(records []*entity.SleepRecord, horizonDays int) (*SleepTrend, error) {
	if len(records) < MinTrendRecords {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInsufficientSleepData,
			fmt.Sprintf("need at least %d sleep records to predict a trend", MinTrendRecords),
			domainerror.ErrInsufficientData,
		)
	}

	if horizonDays <= 0 {
		horizonDays = DefaultForecastDays
	}

	sorted := make([]*entity.SleepRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateOf(sorted[i].SleepTime).Before(dateOf(sorted[j].SleepTime))
	})

	firstDate := dateOf(sorted[0].SleepTime)
	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, r := range sorted {
		xs[i] = float64(daysBetween(firstDate, dateOf(r.SleepTime)))
		ys[i] = r.DurationHours
	}

	slope, intercept := linearFit(xs, ys)
	r2 := rSquared(xs, ys, slope, intercept)

	lastDay := daysBetween(firstDate, dateOf(sorted[len(sorted)-1].SleepTime))

	historical := make([]TrendPoint, 0, lastDay+1)
	for day := 0; day <= lastDay; day++ {
		historical = append(historical, TrendPoint{
			Date:     firstDate.AddDate(0, 0, day),
			DayIndex: day,
			Hours:    slope*float64(day) + intercept,
		})
	}

	forecast := make([]TrendPoint, 0, horizonDays)
	for k := 1; k <= horizonDays; k++ {
		day := lastDay + k
		forecast = append(forecast, TrendPoint{
			Date:     firstDate.AddDate(0, 0, day),
			DayIndex: day,
			Hours:    slope*float64(day) + intercept,
		})
	}

	return &SleepTrend{
		Slope:      slope,
		Intercept:  intercept,
		RSquared:   r2,
		Historical: historical,
		Forecast:   forecast,
	}, nil
}

// PredictSleepTrendInput represents the input for predicting a sleep trend.
type PredictSleepTrendInput struct {
	UserID      uuid.UUID
	HorizonDays int
}

// PredictSleepTrendOutput represents the output of predicting a sleep trend.
type PredictSleepTrendOutput struct {
	Trend *SleepTrend `json:"trend"`
}

// PredictSleepTrendUseCase handles sleep trend prediction.
type PredictSleepTrendUseCase struct {
	sleepRepo adapter.SleepRecordRepository
}

// NewPredictSleepTrendUseCase creates a new PredictSleepTrendUseCase instance.
func NewPredictSleepTrendUseCase(sleepRepo adapter.SleepRecordRepository) *PredictSleepTrendUseCase {
	return &PredictSleepTrendUseCase{
		sleepRepo: sleepRepo,
	}
}

// Execute fits a trend over the user's sleep history.
func (uc *PredictSleepTrendUseCase) Execute(ctx context.Context, input PredictSleepTrendInput) (*PredictSleepTrendOutput, error) {
	records, err := uc.sleepRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep records: %w", err)
	}

	trend, err := FitSleepTrend(records, input.HorizonDays)
	if err != nil {
		return nil, err
	}

	return &PredictSleepTrendOutput{Trend: trend}, nil
}

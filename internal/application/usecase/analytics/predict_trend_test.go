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

// nightsOf builds one sleep record per duration, starting on consecutive
// nights from 2025-03-10 at 23:00.
func nightsOf(t *testing.T, durations []float64) []*entity.SleepRecord {
	t.Helper()
	records := make([]*entity.SleepRecord, 0, len(durations))
	for i, hours := range durations {
		start := time.Date(2025, time.March, 10+i, 23, 0, 0, 0, time.UTC)
		records = append(records, entity.NewSleepRecord(uuid.New(), start, start.Add(time.Duration(hours*float64(time.Hour)))))
	}
	return records
}

func TestFitSleepTrendRequiresFiveRecords(t *testing.T) {
	records := nightsOf(t, []float64{7, 8, 7, 8})

	_, err := FitSleepTrend(records, 7)
	if err == nil {
		t.Fatal("expected an error for four records")
	}
	if !domainerror.IsInsufficientData(err) {
		t.Errorf("expected insufficient data error, got %v", err)
	}

	var analyticsErr *domainerror.AnalyticsError
	if !errors.As(err, &analyticsErr) {
		t.Fatalf("expected AnalyticsError, got %T", err)
	}
	if analyticsErr.Code != domainerror.ErrCodeInsufficientSleepData {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInsufficientSleepData, analyticsErr.Code)
	}
}

func TestFitSleepTrendPerfectLinearSeries(t *testing.T) {
	// Durations rise exactly 0.1 hours per day.
	records := nightsOf(t, []float64{7.0, 7.1, 7.2, 7.3, 7.4, 7.5})

	trend, err := FitSleepTrend(records, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(trend.Slope-0.1) > 1e-6 {
		t.Errorf("expected slope 0.1, got %f", trend.Slope)
	}
	if math.Abs(trend.Intercept-7.0) > 1e-6 {
		t.Errorf("expected intercept 7.0, got %f", trend.Intercept)
	}
	if math.Abs(trend.RSquared-1.0) > 1e-6 {
		t.Errorf("expected r squared 1.0, got %f", trend.RSquared)
	}
}

func TestFitSleepTrendConstantSeries(t *testing.T) {
	records := nightsOf(t, []float64{8, 8, 8, 8, 8})

	trend, err := FitSleepTrend(records, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trend.Slope != 0 {
		t.Errorf("expected zero slope, got %f", trend.Slope)
	}
	if !almostEqual(trend.Intercept, 8) {
		t.Errorf("expected intercept 8, got %f", trend.Intercept)
	}
	// A flat line reproduces a constant series exactly.
	if !almostEqual(trend.RSquared, 1) {
		t.Errorf("expected r squared 1, got %f", trend.RSquared)
	}
}

func TestFitSleepTrendAllRecordsSameDay(t *testing.T) {
	// Five naps on the same calendar day leave x with no variance.
	start := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	records := make([]*entity.SleepRecord, 0, 5)
	for i, hours := range []float64{1, 2, 1, 2, 4} {
		s := start.Add(time.Duration(i*2) * time.Hour)
		records = append(records, entity.NewSleepRecord(uuid.New(), s, s.Add(time.Duration(hours*float64(time.Hour)))))
	}

	trend, err := FitSleepTrend(records, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trend.Slope != 0 {
		t.Errorf("expected zero slope, got %f", trend.Slope)
	}
	if !almostEqual(trend.Intercept, 2) {
		t.Errorf("expected intercept at mean 2, got %f", trend.Intercept)
	}
	// The flat line cannot reproduce the varying durations.
	if !almostEqual(trend.RSquared, 0) {
		t.Errorf("expected r squared 0, got %f", trend.RSquared)
	}
}

func TestFitSleepTrendSeriesShape(t *testing.T) {
	records := nightsOf(t, []float64{7.0, 7.1, 7.2, 7.3, 7.4})

	trend, err := FitSleepTrend(records, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trend.Historical) != 5 {
		t.Fatalf("expected 5 historical points, got %d", len(trend.Historical))
	}
	if len(trend.Forecast) != 3 {
		t.Fatalf("expected 3 forecast points, got %d", len(trend.Forecast))
	}

	firstDate := date(2025, time.March, 10)
	for i, p := range trend.Historical {
		if p.DayIndex != i {
			t.Errorf("historical point %d: expected day index %d, got %d", i, i, p.DayIndex)
		}
		if !p.Date.Equal(firstDate.AddDate(0, 0, i)) {
			t.Errorf("historical point %d: unexpected date %v", i, p.Date)
		}
		expected := trend.Slope*float64(i) + trend.Intercept
		if !almostEqual(p.Hours, expected) {
			t.Errorf("historical point %d: expected %f hours, got %f", i, expected, p.Hours)
		}
	}

	for k, p := range trend.Forecast {
		expectedIndex := 4 + k + 1
		if p.DayIndex != expectedIndex {
			t.Errorf("forecast point %d: expected day index %d, got %d", k, expectedIndex, p.DayIndex)
		}
		if !p.Date.Equal(firstDate.AddDate(0, 0, expectedIndex)) {
			t.Errorf("forecast point %d: unexpected date %v", k, p.Date)
		}
	}
}

func TestFitSleepTrendDefaultHorizon(t *testing.T) {
	records := nightsOf(t, []float64{7, 8, 7, 8, 7})

	trend, err := FitSleepTrend(records, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trend.Forecast) != DefaultForecastDays {
		t.Errorf("expected %d forecast points, got %d", DefaultForecastDays, len(trend.Forecast))
	}
}

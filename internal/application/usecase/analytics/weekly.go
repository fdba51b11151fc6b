package analytics

import (
	"time"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// Metric identifies which quantity a weekly aggregate sums.
type Metric string

const (
	MetricSleepHours      Metric = "sleep_hours"
	MetricExerciseMinutes Metric = "exercise_minutes"
	MetricCaloriesBurned  Metric = "calories_burned"
	MetricCaloriesEaten   Metric = "calories_eaten"
)

// DatedValue is a metric observation attributed to a calendar date.
type DatedValue struct {
	Date  time.Time
	Value float64
}

// DayTotal is the summed metric value for one calendar day.
type DayTotal struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// WeeklyAggregate holds a Monday-start week of daily totals for one metric.
// Days always has exactly seven entries, Monday through Sunday, with zero
// totals for days without data.
type WeeklyAggregate struct {
	Metric      Metric     `json:"metric"`
	WeekStart   time.Time  `json:"week_start"`
	Days        []DayTotal `json:"days"`
	Total       float64    `json:"total"`
	DaysElapsed int        `json:"days_elapsed"`
	Average     float64    `json:"average"`
}

// WeekStartDate returns the Monday of the week containing the given date.
func WeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

// dateOf truncates a timestamp to its calendar date in UTC so that day
// arithmetic stays exact.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// AggregateWeekly sums dated values into the Monday-start week containing
// reference. Values outside the week are ignored. The average divides the
// totals of the elapsed days (Monday through the reference date, inclusive)
// by the number of elapsed days, so a quiet Tuesday still counts against it.
func AggregateWeekly(values []DatedValue, metric Metric, reference time.Time) WeeklyAggregate {
	weekStart := dateOf(WeekStartDate(reference))

	days := make([]DayTotal, 7)
	for i := range days {
		days[i] = DayTotal{Date: weekStart.AddDate(0, 0, i)}
	}

	for _, v := range values {
		idx := daysBetween(weekStart, dateOf(v.Date))
		if idx >= 0 && idx < 7 {
			days[idx].Total += v.Value
		}
	}

	total := 0.0
	for _, d := range days {
		total += d.Total
	}

	daysElapsed := daysBetween(weekStart, dateOf(reference)) + 1
	if daysElapsed > 7 {
		daysElapsed = 7
	}

	average := 0.0
	if daysElapsed > 0 {
		elapsedTotal := 0.0
		for i := 0; i < daysElapsed; i++ {
			elapsedTotal += days[i].Total
		}
		average = elapsedTotal / float64(daysElapsed)
	}

	return WeeklyAggregate{
		Metric:      metric,
		WeekStart:   weekStart,
		Days:        days,
		Total:       total,
		DaysElapsed: daysElapsed,
		Average:     average,
	}
}

// SleepHoursByWakeDate attributes each session's full duration to the day the
// user woke up, so a night spanning midnight counts toward the morning's day.
func SleepHoursByWakeDate(records []*entity.SleepRecord) []DatedValue {
	values := make([]DatedValue, 0, len(records))
	for _, r := range records {
		values = append(values, DatedValue{Date: r.WakeDate(), Value: r.DurationHours})
	}
	return values
}

// ExerciseMinutesByDate attributes exercise duration to the session date.
func ExerciseMinutesByDate(records []*entity.ExerciseRecord) []DatedValue {
	values := make([]DatedValue, 0, len(records))
	for _, r := range records {
		values = append(values, DatedValue{Date: r.Date(), Value: r.DurationMinutes})
	}
	return values
}

// ExerciseCaloriesByDate attributes calories burned to the session date.
func ExerciseCaloriesByDate(records []*entity.ExerciseRecord) []DatedValue {
	values := make([]DatedValue, 0, len(records))
	for _, r := range records {
		values = append(values, DatedValue{Date: r.Date(), Value: r.CaloriesBurned})
	}
	return values
}

// DietCaloriesByDate attributes calories eaten to the meal date.
func DietCaloriesByDate(records []*entity.DietRecord) []DatedValue {
	values := make([]DatedValue, 0, len(records))
	for _, r := range records {
		values = append(values, DatedValue{Date: r.Date(), Value: r.Calories.InexactFloat64()})
	}
	return values
}

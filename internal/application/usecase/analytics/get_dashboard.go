package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// GetDashboardInput represents the input for getting the dashboard.
type GetDashboardInput struct {
	UserID    uuid.UUID
	Reference time.Time // zero value means now
}

// DashboardWeekly groups the current week's aggregates by metric.
type DashboardWeekly struct {
	Sleep           WeeklyAggregate `json:"sleep"`
	ExerciseMinutes WeeklyAggregate `json:"exercise_minutes"`
	CaloriesBurned  WeeklyAggregate `json:"calories_burned"`
	CaloriesEaten   WeeklyAggregate `json:"calories_eaten"`
}

// GetDashboardOutput represents the output of getting the dashboard.
type GetDashboardOutput struct {
	Weekly          DashboardWeekly        `json:"weekly"`
	SleepProgress   *GoalProgress          `json:"sleep_progress,omitempty"`
	CalorieProgress *GoalProgress          `json:"calorie_progress,omitempty"`
	ExerciseGoals   []ExerciseGoalProgress `json:"exercise_goals"`
	Alerts          []string               `json:"alerts"`
}

// GetDashboardUseCase composes the current week's aggregates, goal progress,
// and alerts into one view.
type GetDashboardUseCase struct {
	sleepRepo        adapter.SleepRecordRepository
	exerciseRepo     adapter.ExerciseRecordRepository
	dietRepo         adapter.DietRecordRepository
	generalGoalRepo  adapter.GeneralGoalRepository
	exerciseGoalRepo adapter.ExerciseGoalRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	sleepRepo adapter.SleepRecordRepository,
	exerciseRepo adapter.ExerciseRecordRepository,
	dietRepo adapter.DietRecordRepository,
	generalGoalRepo adapter.GeneralGoalRepository,
	exerciseGoalRepo adapter.ExerciseGoalRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		sleepRepo:        sleepRepo,
		exerciseRepo:     exerciseRepo,
		dietRepo:         dietRepo,
		generalGoalRepo:  generalGoalRepo,
		exerciseGoalRepo: exerciseGoalRepo,
	}
}

// Execute builds the dashboard for the week containing the reference date.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	weekStart := dateOf(WeekStartDate(reference))
	weekEnd := weekStart.AddDate(0, 0, 7)

	sleepRecords, err := uc.sleepRepo.FindByUserIDInRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep records: %w", err)
	}
	exerciseRecords, err := uc.exerciseRepo.FindByUserIDInRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise records: %w", err)
	}
	dietRecords, err := uc.dietRepo.FindByUserIDInRange(ctx, input.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load diet records: %w", err)
	}

	weekly := DashboardWeekly{
		Sleep:           AggregateWeekly(SleepHoursByWakeDate(sleepRecords), MetricSleepHours, reference),
		ExerciseMinutes: AggregateWeekly(ExerciseMinutesByDate(exerciseRecords), MetricExerciseMinutes, reference),
		CaloriesBurned:  AggregateWeekly(ExerciseCaloriesByDate(exerciseRecords), MetricCaloriesBurned, reference),
		CaloriesEaten:   AggregateWeekly(DietCaloriesByDate(dietRecords), MetricCaloriesEaten, reference),
	}

	output := &GetDashboardOutput{
		Weekly:        weekly,
		ExerciseGoals: []ExerciseGoalProgress{},
		Alerts:        []string{},
	}

	targetSleepHours := 0.0
	generalGoal, err := uc.generalGoalRepo.FindByUserID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to load general goal: %w", err)
	}
	if generalGoal != nil {
		if generalGoal.TargetSleepHours > 0 {
			progress := SleepGoalProgress(weekly.Sleep.Average, generalGoal.TargetSleepHours)
			output.SleepProgress = &progress
			targetSleepHours = generalGoal.TargetSleepHours
		}
		if generalGoal.TargetCalorieIntake > 0 {
			progress := CalorieGoalProgress(weekly.CaloriesEaten.Average, generalGoal.TargetCalorieIntake)
			output.CalorieProgress = &progress
		}
	}

	exerciseGoals, err := uc.exerciseGoalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise goals: %w", err)
	}
	for _, goal := range exerciseGoals {
		output.ExerciseGoals = append(output.ExerciseGoals, EvaluateExerciseGoal(goal, exerciseRecords))
	}

	// The alert window can reach into the previous week.
	alertStart := dateOf(reference).AddDate(0, 0, -(alertWindowDays - 1))
	alertEnd := dateOf(reference).AddDate(0, 0, 1)

	alertSleep, err := uc.sleepRepo.FindByUserIDInRange(ctx, input.UserID, alertStart, alertEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep records for alerts: %w", err)
	}
	alertExercise, err := uc.exerciseRepo.FindByUserIDInRange(ctx, input.UserID, alertStart, alertEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise records for alerts: %w", err)
	}

	output.Alerts = EvaluateAlerts(alertSleep, alertExercise, targetSleepHours, reference)

	return output, nil
}

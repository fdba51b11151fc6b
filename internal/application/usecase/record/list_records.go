// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
)

// ListRecordsInput represents the input for listing a user's records.
type ListRecordsInput struct {
	UserID uuid.UUID
}

// ListSleepRecordsOutput represents the output of listing sleep records.
type ListSleepRecordsOutput struct {
	Records []*entity.SleepRecord
}

// ListSleepRecordsUseCase handles listing sleep records.
type ListSleepRecordsUseCase struct {
	sleepRepo adapter.SleepRecordRepository
}

// NewListSleepRecordsUseCase creates a new ListSleepRecordsUseCase instance.
func NewListSleepRecordsUseCase(sleepRepo adapter.SleepRecordRepository) *ListSleepRecordsUseCase {
	return &ListSleepRecordsUseCase{
		sleepRepo: sleepRepo,
	}
}

// Execute lists the user's sleep records, newest first.
func (uc *ListSleepRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListSleepRecordsOutput, error) {
	records, err := uc.sleepRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep records: %w", err)
	}
	return &ListSleepRecordsOutput{Records: records}, nil
}

// ListExerciseRecordsOutput represents the output of listing exercise records.
type ListExerciseRecordsOutput struct {
	Records []*entity.ExerciseRecord
}

// ListExerciseRecordsUseCase handles listing exercise records.
type ListExerciseRecordsUseCase struct {
	exerciseRepo adapter.ExerciseRecordRepository
}

// NewListExerciseRecordsUseCase creates a new ListExerciseRecordsUseCase instance.
func NewListExerciseRecordsUseCase(exerciseRepo adapter.ExerciseRecordRepository) *ListExerciseRecordsUseCase {
	return &ListExerciseRecordsUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute lists the user's exercise records, newest first.
func (uc *ListExerciseRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListExerciseRecordsOutput, error) {
	records, err := uc.exerciseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise records: %w", err)
	}
	return &ListExerciseRecordsOutput{Records: records}, nil
}

// ListDietRecordsOutput represents the output of listing diet records.
type ListDietRecordsOutput struct {
	Records []*entity.DietRecord
}

// ListDietRecordsUseCase handles listing diet records.
type ListDietRecordsUseCase struct {
	dietRepo adapter.DietRecordRepository
}

// NewListDietRecordsUseCase creates a new ListDietRecordsUseCase instance.
func NewListDietRecordsUseCase(dietRepo adapter.DietRecordRepository) *ListDietRecordsUseCase {
	return &ListDietRecordsUseCase{
		dietRepo: dietRepo,
	}
}

// Execute lists the user's diet records, newest first.
func (uc *ListDietRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListDietRecordsOutput, error) {
	records, err := uc.dietRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diet records: %w", err)
	}
	return &ListDietRecordsOutput{Records: records}, nil
}

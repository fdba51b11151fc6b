// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for deleting a record.
type DeleteRecordInput struct {
	UserID   uuid.UUID
	RecordID uuid.UUID
}

// DeleteSleepRecordUseCase handles sleep record deletion with an ownership check.
type DeleteSleepRecordUseCase struct {
	sleepRepo adapter.SleepRecordRepository
}

// NewDeleteSleepRecordUseCase creates a new DeleteSleepRecordUseCase instance.
func NewDeleteSleepRecordUseCase(sleepRepo adapter.SleepRecordRepository) *DeleteSleepRecordUseCase {
	return &DeleteSleepRecordUseCase{
		sleepRepo: sleepRepo,
	}
}

// Execute deletes the record if it belongs to the user.
func (uc *DeleteSleepRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	record, err := uc.sleepRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return domainerror.NewSleepError(
			domainerror.ErrCodeSleepNotFound,
			"sleep record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if record.UserID != input.UserID {
		return domainerror.NewSleepError(
			domainerror.ErrCodeSleepUnauthorized,
			"sleep record belongs to another user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.sleepRepo.Delete(ctx, input.RecordID); err != nil {
		return fmt.Errorf("failed to delete sleep record: %w", err)
	}
	return nil
}

// DeleteExerciseRecordUseCase handles exercise record deletion with an ownership check.
type DeleteExerciseRecordUseCase struct {
	exerciseRepo adapter.ExerciseRecordRepository
}

// NewDeleteExerciseRecordUseCase creates a new DeleteExerciseRecordUseCase instance.
func NewDeleteExerciseRecordUseCase(exerciseRepo adapter.ExerciseRecordRepository) *DeleteExerciseRecordUseCase {
	return &DeleteExerciseRecordUseCase{
		exerciseRepo: exerciseRepo,
	}
}

// Execute deletes the record if it belongs to the user.
func (uc *DeleteExerciseRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	record, err := uc.exerciseRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return domainerror.NewExerciseError(
			domainerror.ErrCodeExerciseNotFound,
			"exercise record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if record.UserID != input.UserID {
		return domainerror.NewExerciseError(
			domainerror.ErrCodeExerciseUnauthorized,
			"exercise record belongs to another user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.exerciseRepo.Delete(ctx, input.RecordID); err != nil {
		return fmt.Errorf("failed to delete exercise record: %w", err)
	}
	return nil
}

// DeleteDietRecordUseCase handles diet record deletion with an ownership check.
type DeleteDietRecordUseCase struct {
	dietRepo adapter.DietRecordRepository
}

// NewDeleteDietRecordUseCase creates a new DeleteDietRecordUseCase instance.
func NewDeleteDietRecordUseCase(dietRepo adapter.DietRecordRepository) *DeleteDietRecordUseCase {
	return &DeleteDietRecordUseCase{
		dietRepo: dietRepo,
	}
}

// Execute deletes the record if it belongs to the user.
func (uc *DeleteDietRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	record, err := uc.dietRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		return domainerror.NewDietError(
			domainerror.ErrCodeDietNotFound,
			"diet record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if record.UserID != input.UserID {
		return domainerror.NewDietError(
			domainerror.ErrCodeDietUnauthorized,
			"diet record belongs to another user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.dietRepo.Delete(ctx, input.RecordID); err != nil {
		return fmt.Errorf("failed to delete diet record: %w", err)
	}
	return nil
}

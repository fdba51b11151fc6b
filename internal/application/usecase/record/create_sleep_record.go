// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// CreateSleepRecordInput represents the input for creating a sleep record.
type CreateSleepRecordInput struct {
	UserID     uuid.UUID
	SleepTime  time.Time
	WakeupTime time.Time
}

// CreateSleepRecordOutput represents the output of creating a sleep record.
type CreateSleepRecordOutput struct {
	Record *entity.SleepRecord
}

// CreateSleepRecordUseCase handles sleep record creation.
type CreateSleepRecordUseCase struct {
	sleepRepo adapter.SleepRecordRepository
}

// NewCreateSleepRecordUseCase creates a new CreateSleepRecordUseCase instance.
func NewCreateSleepRecordUseCase(sleepRepo adapter.SleepRecordRepository) *CreateSleepRecordUseCase {
	return &CreateSleepRecordUseCase{
		sleepRepo: sleepRepo,
	}
}

// Execute creates the sleep record. The duration is derived from the session
// timestamps, and sessions overlapping an existing one are rejected.
func (uc *CreateSleepRecordUseCase) Execute(ctx context.Context, input CreateSleepRecordInput) (*CreateSleepRecordOutput, error) {
	if !input.WakeupTime.After(input.SleepTime) {
		return nil, domainerror.NewSleepError(
			domainerror.ErrCodeWakeBeforeSleep,
			"wake-up time must be after sleep time",
			domainerror.ErrWakeBeforeSleep,
		)
	}

	overlapping, err := uc.sleepRepo.HasOverlapping(ctx, input.UserID, input.SleepTime, input.WakeupTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check for overlapping sessions: %w", err)
	}
	if overlapping {
		return nil, domainerror.NewSleepError(
			domainerror.ErrCodeOverlappingSleep,
			"sleep session overlaps an existing record",
			domainerror.ErrOverlappingSleep,
		)
	}

	record := entity.NewSleepRecord(input.UserID, input.SleepTime, input.WakeupTime)
	if err := uc.sleepRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create sleep record: %w", err)
	}

	return &CreateSleepRecordOutput{Record: record}, nil
}

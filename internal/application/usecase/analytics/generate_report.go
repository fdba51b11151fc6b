package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
)

// reportWindowDays is the trailing window a report covers. Averages divide by
// the full window whenever the record type has any entries, unlike the
// week-to-date goal progress which divides by elapsed days.
const reportWindowDays = 7

// GenerateReportInput represents the input for generating a health report.
type GenerateReportInput struct {
	UserID    uuid.UUID
	SendEmail bool
}

// GenerateReportOutput represents the output of generating a health report.
type GenerateReportOutput struct {
	Report *entity.HealthReport `json:"report"`
}

// GenerateReportUseCase builds the trailing-week health report, stores it,
// and optionally queues it for email delivery.
type GenerateReportUseCase struct {
	sleepRepo    adapter.SleepRecordRepository
	exerciseRepo adapter.ExerciseRecordRepository
	dietRepo     adapter.DietRecordRepository
	userRepo     adapter.UserRepository
	reportRepo   adapter.HealthReportRepository
	emailService adapter.EmailService
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	sleepRepo adapter.SleepRecordRepository,
	exerciseRepo adapter.ExerciseRecordRepository,
	dietRepo adapter.DietRecordRepository,
	userRepo adapter.UserRepository,
	reportRepo adapter.HealthReportRepository,
	emailService adapter.EmailService,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		sleepRepo:    sleepRepo,
		exerciseRepo: exerciseRepo,
		dietRepo:     dietRepo,
		userRepo:     userRepo,
		reportRepo:   reportRepo,
		emailService: emailService,
	}
}

// Execute generates and persists the report.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -reportWindowDays)

	sleepRecords, err := uc.sleepRepo.FindByUserIDInRange(ctx, input.UserID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep records: %w", err)
	}
	exerciseRecords, err := uc.exerciseRepo.FindByUserIDInRange(ctx, input.UserID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise records: %w", err)
	}
	dietRecords, err := uc.dietRepo.FindByUserIDInRange(ctx, input.UserID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load diet records: %w", err)
	}

	avgSleep := 0.0
	if len(sleepRecords) > 0 {
		for _, r := range sleepRecords {
			avgSleep += r.DurationHours
		}
		avgSleep /= reportWindowDays
	}

	avgBurned := 0.0
	if len(exerciseRecords) > 0 {
		for _, r := range exerciseRecords {
			avgBurned += r.CaloriesBurned
		}
		avgBurned /= reportWindowDays
	}

	avgEaten := 0.0
	if len(dietRecords) > 0 {
		for _, r := range dietRecords {
			avgEaten += r.Calories.InexactFloat64()
		}
		avgEaten /= reportWindowDays
	}

	hasAnyRecords := len(sleepRecords) > 0 || len(exerciseRecords) > 0 || len(dietRecords) > 0
	advice := SynthesizeReport(avgSleep, avgBurned, avgEaten, user.BMI, hasAnyRecords)

	report := entity.NewHealthReport(input.UserID, avgSleep, avgBurned, avgEaten, user.BMI, advice)
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	if input.SendEmail {
		queueErr := uc.emailService.QueueWeeklyReportEmail(ctx, adapter.QueueWeeklyReportInput{
			UserEmail:         user.Email,
			UserName:          user.Name,
			AvgSleepHours:     avgSleep,
			AvgCaloriesBurned: avgBurned,
			AvgCaloriesEaten:  avgEaten,
			BMI:               user.BMI,
			AdviceLines:       advice,
		})
		if queueErr != nil {
			// The report itself is fine, delivery just failed to queue.
			slog.Error("Failed to queue weekly report email",
				"user_id", input.UserID,
				"error", queueErr,
			)
		}
	}

	return &GenerateReportOutput{Report: report}, nil
}

// ListReportsInput represents the input for listing report history.
type ListReportsInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListReportsOutput represents the output of listing report history.
type ListReportsOutput struct {
	Reports []*entity.HealthReport `json:"reports"`
}

// ListReportsUseCase handles listing a user's stored reports.
type ListReportsUseCase struct {
	reportRepo adapter.HealthReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.HealthReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute lists the user's report history, newest first.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	reports, err := uc.reportRepo.FindByUserID(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}

	return &ListReportsOutput{Reports: reports}, nil
}

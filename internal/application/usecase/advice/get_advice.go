// Package advice contains the AI health advice use cases.
package advice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// adviceWindowDays is the trailing window the advice prompt is built from.
const adviceWindowDays = 7

// DefaultAdviceTTL is how long generated advice stays cached per user.
const DefaultAdviceTTL = time.Hour

// GetAdviceInput represents the input for fetching AI health advice.
type GetAdviceInput struct {
	UserID uuid.UUID
}

// GetAdviceOutput represents the output of fetching AI health advice.
type GetAdviceOutput struct {
	Advice string `json:"advice"`
	Cached bool   `json:"cached"`
}

// GetAdviceUseCase builds the user's trailing-week metrics, asks the AI
// service for advice, and caches the result per user.
type GetAdviceUseCase struct {
	sleepRepo     adapter.SleepRecordRepository
	exerciseRepo  adapter.ExerciseRecordRepository
	dietRepo      adapter.DietRecordRepository
	userRepo      adapter.UserRepository
	adviceService adapter.AdviceService
	adviceCache   adapter.AdviceCache
	cacheTTL      time.Duration
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(
	sleepRepo adapter.SleepRecordRepository,
	exerciseRepo adapter.ExerciseRecordRepository,
	dietRepo adapter.DietRecordRepository,
	userRepo adapter.UserRepository,
	adviceService adapter.AdviceService,
	adviceCache adapter.AdviceCache,
) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		sleepRepo:     sleepRepo,
		exerciseRepo:  exerciseRepo,
		dietRepo:      dietRepo,
		userRepo:      userRepo,
		adviceService: adviceService,
		adviceCache:   adviceCache,
		cacheTTL:      DefaultAdviceTTL,
	}
}

// Execute returns advice for the user, serving from cache when possible.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*GetAdviceOutput, error) {
	if uc.adviceCache != nil {
		cached, err := uc.adviceCache.Get(ctx, input.UserID)
		if err != nil {
			// Cache trouble must not block advice generation.
			slog.Warn("Advice cache lookup failed", "user_id", input.UserID, "error", err)
		} else if cached != "" {
			return &GetAdviceOutput{Advice: cached, Cached: true}, nil
		}
	}

	if !uc.adviceService.IsAvailable() {
		return nil, domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceNotConfigured,
			friendlyMessages[domainerror.ErrCodeAdviceNotConfigured],
			domainerror.ErrAdviceNotConfigured,
		)
	}

	request, err := uc.buildRequest(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	advice, err := uc.adviceService.GenerateAdvice(ctx, *request)
	if err != nil {
		return nil, classifyError(err)
	}

	if uc.adviceCache != nil {
		if err := uc.adviceCache.Set(ctx, input.UserID, advice, uc.cacheTTL); err != nil {
			slog.Warn("Failed to cache advice", "user_id", input.UserID, "error", err)
		}
	}

	return &GetAdviceOutput{Advice: advice, Cached: false}, nil
}

func (uc *GetAdviceUseCase) buildRequest(ctx context.Context, userID uuid.UUID) (*adapter.AdviceRequest, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -adviceWindowDays)

	sleepRecords, err := uc.sleepRepo.FindByUserIDInRange(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load sleep records: %w", err)
	}
	exerciseRecords, err := uc.exerciseRepo.FindByUserIDInRange(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise records: %w", err)
	}
	dietRecords, err := uc.dietRepo.FindByUserIDInRange(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load diet records: %w", err)
	}

	request := adapter.AdviceRequest{BMI: user.BMI}
	if len(sleepRecords) > 0 {
		for _, r := range sleepRecords {
			request.AvgSleepHours += r.DurationHours
		}
		request.AvgSleepHours /= adviceWindowDays
	}
	if len(exerciseRecords) > 0 {
		for _, r := range exerciseRecords {
			request.AvgCaloriesBurned += r.CaloriesBurned
		}
		request.AvgCaloriesBurned /= adviceWindowDays
	}
	if len(dietRecords) > 0 {
		for _, r := range dietRecords {
			request.AvgCaloriesEaten += r.Calories.InexactFloat64()
		}
		request.AvgCaloriesEaten /= adviceWindowDays
	}

	return &request, nil
}

// InvalidateAdviceUseCase drops a user's cached advice so the next request
// regenerates it. Record writes call this so advice does not go stale.
type InvalidateAdviceUseCase struct {
	adviceCache adapter.AdviceCache
}

// NewInvalidateAdviceUseCase creates a new InvalidateAdviceUseCase instance.
func NewInvalidateAdviceUseCase(adviceCache adapter.AdviceCache) *InvalidateAdviceUseCase {
	return &InvalidateAdviceUseCase{adviceCache: adviceCache}
}

// Execute drops the cached advice.
func (uc *InvalidateAdviceUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	if uc.adviceCache == nil {
		return nil
	}
	return uc.adviceCache.Invalidate(ctx, userID)
}

// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

type stubSleepRepo struct {
	created     *entity.SleepRecord
	overlapping bool
}

func (s *stubSleepRepo) Create(_ context.Context, record *entity.SleepRecord) error {
	s.created = record
	return nil
}

func (s *stubSleepRepo) FindByID(context.Context, uuid.UUID) (*entity.SleepRecord, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (s *stubSleepRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.SleepRecord, error) {
	return nil, nil
}

func (s *stubSleepRepo) FindByUserIDInRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.SleepRecord, error) {
	return nil, nil
}

func (s *stubSleepRepo) HasOverlapping(context.Context, uuid.UUID, time.Time, time.Time) (bool, error) {
	return s.overlapping, nil
}

func (s *stubSleepRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

type stubExerciseRepo struct {
	created *entity.ExerciseRecord
}

func (s *stubExerciseRepo) Create(_ context.Context, record *entity.ExerciseRecord) error {
	s.created = record
	return nil
}

func (s *stubExerciseRepo) FindByID(context.Context, uuid.UUID) (*entity.ExerciseRecord, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (s *stubExerciseRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.ExerciseRecord, error) {
	return nil, nil
}

func (s *stubExerciseRepo) FindByUserIDInRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.ExerciseRecord, error) {
	return nil, nil
}

func (s *stubExerciseRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

type stubDietRepo struct {
	created *entity.DietRecord
}

func (s *stubDietRepo) Create(_ context.Context, record *entity.DietRecord) error {
	s.created = record
	return nil
}

func (s *stubDietRepo) FindByID(context.Context, uuid.UUID) (*entity.DietRecord, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (s *stubDietRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.DietRecord, error) {
	return nil, nil
}

func (s *stubDietRepo) FindByUserIDInRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.DietRecord, error) {
	return nil, nil
}

func (s *stubDietRepo) Delete(context.Context, uuid.UUID) error {
	return nil
}

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	if s.user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (s *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func TestCreateSleepRecord(t *testing.T) {
	userID := uuid.New()
	sleepTime := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)
	wakeTime := time.Date(2025, time.March, 11, 7, 0, 0, 0, time.UTC)

	t.Run("derives duration from timestamps", func(t *testing.T) {
		repo := &stubSleepRepo{}
		uc := NewCreateSleepRecordUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateSleepRecordInput{
			UserID:     userID,
			SleepTime:  sleepTime,
			WakeupTime: wakeTime,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(output.Record.DurationHours-7.5) > 1e-9 {
			t.Errorf("expected 7.5 hours, got %f", output.Record.DurationHours)
		}
		if repo.created == nil {
			t.Error("expected the record to be persisted")
		}
	})

	t.Run("rejects wake before sleep", func(t *testing.T) {
		uc := NewCreateSleepRecordUseCase(&stubSleepRepo{})

		_, err := uc.Execute(context.Background(), CreateSleepRecordInput{
			UserID:     userID,
			SleepTime:  wakeTime,
			WakeupTime: sleepTime,
		})
		if !errors.Is(err, domainerror.ErrWakeBeforeSleep) {
			t.Errorf("expected ErrWakeBeforeSleep, got %v", err)
		}
	})

	t.Run("rejects overlapping sessions", func(t *testing.T) {
		uc := NewCreateSleepRecordUseCase(&stubSleepRepo{overlapping: true})

		_, err := uc.Execute(context.Background(), CreateSleepRecordInput{
			UserID:     userID,
			SleepTime:  sleepTime,
			WakeupTime: wakeTime,
		})
		if !errors.Is(err, domainerror.ErrOverlappingSleep) {
			t.Errorf("expected ErrOverlappingSleep, got %v", err)
		}
	})
}

func TestCreateExerciseRecord(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2025, time.March, 11, 18, 0, 0, 0, time.UTC)

	t.Run("estimates calories from MET and weight", func(t *testing.T) {
		user := entity.NewUser("a@example.com", "a", "hash")
		user.WeightKg = 70
		repo := &stubExerciseRepo{}
		uc := NewCreateExerciseRecordUseCase(repo, &stubUserRepo{user: user})

		output, err := uc.Execute(context.Background(), CreateExerciseRecordInput{
			UserID:          userID,
			Type:            entity.ExerciseTypeRunning,
			DurationMinutes: 30,
			ExerciseTime:    at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 30 * 7.0 * 3.5 * 70 / 200
		if math.Abs(output.Record.CaloriesBurned-257.25) > 1e-9 {
			t.Errorf("expected 257.25 calories, got %f", output.Record.CaloriesBurned)
		}
	})

	t.Run("falls back to the default weight", func(t *testing.T) {
		user := entity.NewUser("a@example.com", "a", "hash")
		uc := NewCreateExerciseRecordUseCase(&stubExerciseRepo{}, &stubUserRepo{user: user})

		output, err := uc.Execute(context.Background(), CreateExerciseRecordInput{
			UserID:          userID,
			Type:            entity.ExerciseTypeRunning,
			DurationMinutes: 30,
			ExerciseTime:    at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 30 * 7.0 * 3.5 * 60 / 200
		if math.Abs(output.Record.CaloriesBurned-220.5) > 1e-9 {
			t.Errorf("expected 220.5 calories, got %f", output.Record.CaloriesBurned)
		}
	})

	t.Run("other type requires manual calories", func(t *testing.T) {
		uc := NewCreateExerciseRecordUseCase(&stubExerciseRepo{}, &stubUserRepo{})

		_, err := uc.Execute(context.Background(), CreateExerciseRecordInput{
			UserID:          userID,
			Type:            entity.ExerciseTypeOther,
			DurationMinutes: 30,
			ExerciseTime:    at,
		})
		if !errors.Is(err, domainerror.ErrManualCaloriesRequired) {
			t.Errorf("expected ErrManualCaloriesRequired, got %v", err)
		}
	})

	t.Run("other type keeps the supplied calories", func(t *testing.T) {
		uc := NewCreateExerciseRecordUseCase(&stubExerciseRepo{}, &stubUserRepo{})

		output, err := uc.Execute(context.Background(), CreateExerciseRecordInput{
			UserID:          userID,
			Type:            entity.ExerciseTypeOther,
			DurationMinutes: 30,
			CaloriesBurned:  150,
			ExerciseTime:    at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Record.CaloriesBurned != 150 {
			t.Errorf("expected 150 calories, got %f", output.Record.CaloriesBurned)
		}
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		uc := NewCreateExerciseRecordUseCase(&stubExerciseRepo{}, &stubUserRepo{})

		_, err := uc.Execute(context.Background(), CreateExerciseRecordInput{
			UserID:          userID,
			Type:            "skydiving",
			DurationMinutes: 30,
			ExerciseTime:    at,
		})
		if !errors.Is(err, domainerror.ErrInvalidExerciseType) {
			t.Errorf("expected ErrInvalidExerciseType, got %v", err)
		}
	})
}

func TestCreateDietRecord(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2025, time.March, 11, 12, 0, 0, 0, time.UTC)

	t.Run("computes catalog calories from the portion", func(t *testing.T) {
		repo := &stubDietRepo{}
		uc := NewCreateDietRecordUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateDietRecordInput{
			UserID:       userID,
			FoodName:     "rice",
			MealType:     entity.MealTypeLunch,
			PortionGrams: decimal.NewFromInt(150),
			EatenAt:      at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 150/100 * 130
		expected := decimal.NewFromInt(195)
		if !output.Record.Calories.Equal(expected) {
			t.Errorf("expected %s calories, got %s", expected, output.Record.Calories)
		}
	})

	t.Run("custom food records one serving", func(t *testing.T) {
		uc := NewCreateDietRecordUseCase(&stubDietRepo{})

		output, err := uc.Execute(context.Background(), CreateDietRecordInput{
			UserID:         userID,
			FoodName:       "grandma's dumplings",
			Custom:         true,
			MealType:       entity.MealTypeDinner,
			ManualCalories: decimal.NewFromInt(450),
			EatenAt:        at,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Record.PortionGrams.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected a portion of 1, got %s", output.Record.PortionGrams)
		}
		if !output.Record.Calories.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected 450 calories, got %s", output.Record.Calories)
		}
	})

	t.Run("rejects unknown catalog foods", func(t *testing.T) {
		uc := NewCreateDietRecordUseCase(&stubDietRepo{})

		_, err := uc.Execute(context.Background(), CreateDietRecordInput{
			UserID:       userID,
			FoodName:     "ambrosia",
			MealType:     entity.MealTypeSnack,
			PortionGrams: decimal.NewFromInt(100),
			EatenAt:      at,
		})
		if !errors.Is(err, domainerror.ErrUnknownFood) {
			t.Errorf("expected ErrUnknownFood, got %v", err)
		}
	})

	t.Run("rejects zero-calorie entries", func(t *testing.T) {
		uc := NewCreateDietRecordUseCase(&stubDietRepo{})

		_, err := uc.Execute(context.Background(), CreateDietRecordInput{
			UserID:       userID,
			FoodName:     "rice",
			MealType:     entity.MealTypeLunch,
			PortionGrams: decimal.Zero,
			EatenAt:      at,
		})
		if !errors.Is(err, domainerror.ErrZeroCalories) {
			t.Errorf("expected ErrZeroCalories, got %v", err)
		}
	})

	t.Run("rejects unknown meal types", func(t *testing.T) {
		uc := NewCreateDietRecordUseCase(&stubDietRepo{})

		_, err := uc.Execute(context.Background(), CreateDietRecordInput{
			UserID:       userID,
			FoodName:     "rice",
			MealType:     "brunch",
			PortionGrams: decimal.NewFromInt(100),
			EatenAt:      at,
		})
		if !errors.Is(err, domainerror.ErrInvalidMealType) {
			t.Errorf("expected ErrInvalidMealType, got %v", err)
		}
	})
}

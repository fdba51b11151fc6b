// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

type stubGeneralGoalRepo struct {
	goal *entity.GeneralGoal
}

func (s *stubGeneralGoalRepo) Upsert(ctx context.Context, goal *entity.GeneralGoal) error {
	s.goal = goal
	return nil
}

func (s *stubGeneralGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.GeneralGoal, error) {
	if s.goal == nil || s.goal.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	return s.goal, nil
}

type stubExerciseGoalRepo struct {
	goals map[uuid.UUID]*entity.ExerciseGoal
}

func newStubExerciseGoalRepo() *stubExerciseGoalRepo {
	return &stubExerciseGoalRepo{goals: make(map[uuid.UUID]*entity.ExerciseGoal)}
}

func (s *stubExerciseGoalRepo) Create(ctx context.Context, goal *entity.ExerciseGoal) error {
	s.goals[goal.ID] = goal
	return nil
}

func (s *stubExerciseGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseGoal, error) {
	goal, ok := s.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal, nil
}

func (s *stubExerciseGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseGoal, error) {
	var result []*entity.ExerciseGoal
	for _, goal := range s.goals {
		if goal.UserID == userID {
			result = append(result, goal)
		}
	}
	return result, nil
}

func (s *stubExerciseGoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.goals, id)
	return nil
}

func goalCode(t *testing.T, err error) domainerror.GoalErrorCode {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	return goalErr.Code
}

func TestUpsertGeneralGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates goal when none exists", func(t *testing.T) {
		repo := &stubGeneralGoalRepo{}
		uc := NewUpsertGeneralGoalUseCase(repo)

		output, err := uc.Execute(ctx, UpsertGeneralGoalInput{
			UserID:              userID,
			TargetSleepHours:    8,
			TargetCalorieIntake: 2000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.TargetSleepHours != 8 {
			t.Errorf("expected sleep target 8, got %v", output.Goal.TargetSleepHours)
		}
		if repo.goal == nil {
			t.Error("expected goal to be persisted")
		}
	})

	t.Run("replaces existing goal keeping its identity", func(t *testing.T) {
		repo := &stubGeneralGoalRepo{goal: entity.NewGeneralGoal(userID, 7, 1800)}
		existingID := repo.goal.ID
		uc := NewUpsertGeneralGoalUseCase(repo)

		output, err := uc.Execute(ctx, UpsertGeneralGoalInput{
			UserID:              userID,
			TargetSleepHours:    8.5,
			TargetCalorieIntake: 2200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.ID != existingID {
			t.Error("expected existing goal to be updated, not replaced")
		}
		if output.Goal.TargetSleepHours != 8.5 {
			t.Errorf("expected sleep target 8.5, got %v", output.Goal.TargetSleepHours)
		}
	})

	t.Run("rejects sleep target above 24 hours", func(t *testing.T) {
		uc := NewUpsertGeneralGoalUseCase(&stubGeneralGoalRepo{})

		_, err := uc.Execute(ctx, UpsertGeneralGoalInput{UserID: userID, TargetSleepHours: 25})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidSleepTarget {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidSleepTarget, code)
		}
	})

	t.Run("rejects negative sleep target", func(t *testing.T) {
		uc := NewUpsertGeneralGoalUseCase(&stubGeneralGoalRepo{})

		_, err := uc.Execute(ctx, UpsertGeneralGoalInput{UserID: userID, TargetSleepHours: -1})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidSleepTarget {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidSleepTarget, code)
		}
	})

	t.Run("rejects negative calorie target", func(t *testing.T) {
		uc := NewUpsertGeneralGoalUseCase(&stubGeneralGoalRepo{})

		_, err := uc.Execute(ctx, UpsertGeneralGoalInput{
			UserID:              userID,
			TargetSleepHours:    8,
			TargetCalorieIntake: -100,
		})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidCalorieTarget {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCalorieTarget, code)
		}
	})
}

func TestGetGeneralGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns stored goal", func(t *testing.T) {
		repo := &stubGeneralGoalRepo{goal: entity.NewGeneralGoal(userID, 8, 2000)}
		uc := NewGetGeneralGoalUseCase(repo)

		output, err := uc.Execute(ctx, GetGeneralGoalInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.TargetCalorieIntake != 2000 {
			t.Errorf("expected calorie target 2000, got %v", output.Goal.TargetCalorieIntake)
		}
	})

	t.Run("not found when no goal set", func(t *testing.T) {
		uc := NewGetGeneralGoalUseCase(&stubGeneralGoalRepo{})

		_, err := uc.Execute(ctx, GetGeneralGoalInput{UserID: userID})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})
}

func TestCreateExerciseGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates duration goal for all exercise types", func(t *testing.T) {
		repo := newStubExerciseGoalRepo()
		uc := NewCreateExerciseGoalUseCase(repo)

		output, err := uc.Execute(ctx, CreateExerciseGoalInput{
			UserID:      userID,
			GoalType:    entity.ExerciseGoalDuration,
			TargetValue: 150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.ExerciseType != nil {
			t.Error("expected nil exercise type to mean all types")
		}
		if output.Goal.Period != entity.GoalPeriodWeekly {
			t.Errorf("expected weekly period, got %s", output.Goal.Period)
		}
	})

	t.Run("creates goal scoped to one exercise type", func(t *testing.T) {
		repo := newStubExerciseGoalRepo()
		uc := NewCreateExerciseGoalUseCase(repo)

		running := entity.ExerciseTypeRunning
		output, err := uc.Execute(ctx, CreateExerciseGoalInput{
			UserID:       userID,
			GoalType:     entity.ExerciseGoalFrequency,
			TargetValue:  3,
			ExerciseType: &running,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.ExerciseType == nil || *output.Goal.ExerciseType != entity.ExerciseTypeRunning {
			t.Errorf("expected running exercise type, got %v", output.Goal.ExerciseType)
		}
	})

	t.Run("rejects unknown goal type", func(t *testing.T) {
		uc := NewCreateExerciseGoalUseCase(newStubExerciseGoalRepo())

		_, err := uc.Execute(ctx, CreateExerciseGoalInput{
			UserID:      userID,
			GoalType:    "distance",
			TargetValue: 10,
		})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidGoalType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidGoalType, code)
		}
	})

	t.Run("rejects non-positive target value", func(t *testing.T) {
		uc := NewCreateExerciseGoalUseCase(newStubExerciseGoalRepo())

		_, err := uc.Execute(ctx, CreateExerciseGoalInput{
			UserID:      userID,
			GoalType:    entity.ExerciseGoalCalories,
			TargetValue: 0,
		})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidTargetValue {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTargetValue, code)
		}
	})

	t.Run("rejects unknown exercise type filter", func(t *testing.T) {
		uc := NewCreateExerciseGoalUseCase(newStubExerciseGoalRepo())

		bogus := entity.ExerciseType("parkour")
		_, err := uc.Execute(ctx, CreateExerciseGoalInput{
			UserID:       userID,
			GoalType:     entity.ExerciseGoalDuration,
			TargetValue:  60,
			ExerciseType: &bogus,
		})
		if code := goalCode(t, err); code != domainerror.ErrCodeMissingGoalFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingGoalFields, code)
		}
	})
}

func TestDeleteExerciseGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes own goal", func(t *testing.T) {
		repo := newStubExerciseGoalRepo()
		goal := entity.NewExerciseGoal(userID, entity.ExerciseGoalDuration, 150, nil)
		repo.goals[goal.ID] = goal
		uc := NewDeleteExerciseGoalUseCase(repo)

		if err := uc.Execute(ctx, DeleteExerciseGoalInput{UserID: userID, GoalID: goal.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.goals[goal.ID]; ok {
			t.Error("expected goal to be deleted")
		}
	})

	t.Run("not found for unknown goal", func(t *testing.T) {
		uc := NewDeleteExerciseGoalUseCase(newStubExerciseGoalRepo())

		err := uc.Execute(ctx, DeleteExerciseGoalInput{UserID: userID, GoalID: uuid.New()})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})

	t.Run("rejects deleting another user's goal", func(t *testing.T) {
		repo := newStubExerciseGoalRepo()
		goal := entity.NewExerciseGoal(uuid.New(), entity.ExerciseGoalDuration, 150, nil)
		repo.goals[goal.ID] = goal
		uc := NewDeleteExerciseGoalUseCase(repo)

		err := uc.Execute(ctx, DeleteExerciseGoalInput{UserID: userID, GoalID: goal.ID})
		if code := goalCode(t, err); code != domainerror.ErrCodeUnauthorizedGoalAccess {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnauthorizedGoalAccess, code)
		}
		if _, ok := repo.goals[goal.ID]; !ok {
			t.Error("expected goal to remain")
		}
	})
}

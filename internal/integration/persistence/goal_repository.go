// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/persistence/model"
)

// generalGoalRepository implements the adapter.GeneralGoalRepository interface.
type generalGoalRepository struct {
	db *gorm.DB
}

// NewGeneralGoalRepository creates a new general goal repository instance.
func NewGeneralGoalRepository(db *gorm.DB) adapter.GeneralGoalRepository {
	return &generalGoalRepository{
		db: db,
	}
}

// Upsert creates the user's general goal or replaces the targets of the
// existing one. user_id carries a unique index so the conflict target works.
func (r *generalGoalRepository) Upsert(ctx context.Context, goal *entity.GeneralGoal) error {
	goalModel := model.GeneralGoalFromEntity(goal)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"target_sleep_hours", "target_calorie_intake", "updated_at"}),
		}).
		Create(goalModel)
	return result.Error
}

// FindByUserID retrieves the user's general goal.
func (r *generalGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.GeneralGoal, error) {
	var goalModel model.GeneralGoalModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// exerciseGoalRepository implements the adapter.ExerciseGoalRepository interface.
type exerciseGoalRepository struct {
	db *gorm.DB
}

// NewExerciseGoalRepository creates a new exercise goal repository instance.
func NewExerciseGoalRepository(db *gorm.DB) adapter.ExerciseGoalRepository {
	return &exerciseGoalRepository{
		db: db,
	}
}

// Create creates a new exercise goal in the database.
func (r *exerciseGoalRepository) Create(ctx context.Context, goal *entity.ExerciseGoal) error {
	goalModel := model.ExerciseGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	return result.Error
}

// FindByID retrieves an exercise goal by its ID.
func (r *exerciseGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseGoal, error) {
	var goalModel model.ExerciseGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all exercise goals for a given user.
func (r *exerciseGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseGoal, error) {
	var goalModels []model.ExerciseGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.ExerciseGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Delete removes an exercise goal from the database.
func (r *exerciseGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExerciseGoalModel{}, "id = ?", id)
	return result.Error
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/persistence/model"
)

// exerciseRecordRepository implements the adapter.ExerciseRecordRepository interface.
type exerciseRecordRepository struct {
	db *gorm.DB
}

// NewExerciseRecordRepository creates a new exercise record repository instance.
func NewExerciseRecordRepository(db *gorm.DB) adapter.ExerciseRecordRepository {
	return &exerciseRecordRepository{
		db: db,
	}
}

// Create creates a new exercise record in the database.
func (r *exerciseRecordRepository) Create(ctx context.Context, record *entity.ExerciseRecord) error {
	recordModel := model.ExerciseRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	return result.Error
}

// FindByID retrieves an exercise record by its ID.
func (r *exerciseRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseRecord, error) {
	var recordModel model.ExerciseRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUserID retrieves all exercise records for a user, newest first.
func (r *exerciseRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseRecord, error) {
	var recordModels []model.ExerciseRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("exercise_time DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ExerciseRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// FindByUserIDInRange retrieves exercise records whose time falls in [start, end).
func (r *exerciseRecordRepository) FindByUserIDInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.ExerciseRecord, error) {
	var recordModels []model.ExerciseRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND exercise_time >= ? AND exercise_time < ?", userID, start, end).
		Order("exercise_time ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ExerciseRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// Delete removes an exercise record from the database.
func (r *exerciseRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExerciseRecordModel{}, "id = ?", id)
	return result.Error
}

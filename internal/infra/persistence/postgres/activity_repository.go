package postgres

import (
	"context"

	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	"meatly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Append persists one activity record.
func (repo *activityRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	logM := fromActivityDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListByActor retrieves the activity trail for an identity, newest first.
func (repo *activityRepository) ListByActor(ctx context.Context, actorID uuid.UUID) ([]*entity.ActivityLog, error) {
	var logMs []*model.ActivityLogModel
	err := repo.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Find(&logMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	logs := make([]*entity.ActivityLog, 0, len(logMs))
	for _, logM := range logMs {
		logs = append(logs, toActivityDomain(logM))
	}

	return logs, nil
}

// DeleteByActorID removes all activity rows for an identity. Used by orphan repair.
func (repo *activityRepository) DeleteByActorID(ctx context.Context, actorID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Delete(&model.ActivityLogModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete activity logs")
	}

	return nil
}

// --- Mapper Functions ---

func toActivityDomain(data *model.ActivityLogModel) *entity.ActivityLog {
	if data == nil {
		return nil
	}

	return &entity.ActivityLog{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    data.Action,
		Detail:    data.Detail,
		CreatedAt: data.CreatedAt,
	}
}

func fromActivityDomain(data *entity.ActivityLog) *model.ActivityLogModel {
	if data == nil {
		return nil
	}

	return &model.ActivityLogModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		Action:    data.Action,
		Detail:    data.Detail,
		CreatedAt: data.CreatedAt,
	}
}

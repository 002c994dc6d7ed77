package repository

import (
	"context"

	"meatly/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository defines persistence operations for the audit trail.
type ActivityRepository interface {
	// Append persists one activity record.
	Append(ctx context.Context, log *entity.ActivityLog) error

	// ListByActor retrieves the activity trail for an identity, newest first.
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]*entity.ActivityLog, error)

	// DeleteByActorID removes all activity rows for an identity. Used by orphan repair.
	DeleteByActorID(ctx context.Context, actorID uuid.UUID) error
}

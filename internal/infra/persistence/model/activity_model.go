package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel mirrors the 'activity_logs' table.
type ActivityLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Action    string    `gorm:"type:varchar(50);not null"`
	Detail    string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

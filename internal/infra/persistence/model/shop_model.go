package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. Collection-valued fields are stored as
// jsonb through GORM's JSON serializer.
type ShopModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	OwnerName string    `gorm:"type:varchar(100)"`

	Plot        string `gorm:"type:varchar(50)"`
	Floor       string `gorm:"type:varchar(50)"`
	Building    string `gorm:"type:varchar(100)"`
	AddressLine string `gorm:"type:varchar(255)"`
	Area        string `gorm:"type:varchar(100)"`
	City        string `gorm:"type:varchar(100)"`
	Pincode     string `gorm:"type:varchar(10)"`
	FullAddress string `gorm:"type:text;not null"`

	Latitude       float64 `gorm:"not null"`
	Longitude      float64 `gorm:"not null"`
	NeedsGeocoding bool    `gorm:"not null;default:false"`

	Phone string `gorm:"type:varchar(20);index;not null"`
	Email string `gorm:"type:varchar(255);index"`

	WorkingDays []string          `gorm:"type:jsonb;serializer:json"`
	OpenTime    string            `gorm:"type:varchar(5);not null"`
	CloseTime   string            `gorm:"type:varchar(5);not null"`
	Documents   map[string]string `gorm:"type:jsonb;serializer:json"`
	Photos      []string          `gorm:"type:jsonb;serializer:json"`

	Active    bool `gorm:"not null;default:false"`
	Approved  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

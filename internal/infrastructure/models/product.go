package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(200);not null;index"`
	Description      string    `gorm:"type:text;not null"`
	ShortDescription *string   `gorm:"type:varchar(500)"`
	Category         *string   `gorm:"type:varchar(100);index"`

	Price          float64  `gorm:"not null"`
	CompareAtPrice *float64 `gorm:""`

	FileRef      string  `gorm:"type:varchar(512);not null"`
	FileSize     int64   `gorm:"not null"`
	FileType     string  `gorm:"type:varchar(20);not null"`
	ThumbnailRef *string `gorm:"type:varchar(512)"`

	Status   string `gorm:"type:varchar(20);not null;default:'draft';index"`
	IsActive bool   `gorm:"not null;default:true"`

	StockQuantity int `gorm:"not null;default:-1"` // -1 = unlimited
	SoldCount     int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null"`
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time
}

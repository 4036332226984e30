package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'buyer'"`

	SellerStatus     string  `gorm:"type:varchar(20);not null;default:'none';index"`
	StoreName        *string `gorm:"type:varchar(255)"`
	SellerBio        *string `gorm:"type:varchar(1024)"`
	SellerAddress    *string `gorm:"type:varchar(500)"`
	SellerTaxID      *string `gorm:"type:varchar(50)"`
	IsSellerApproved bool    `gorm:"not null;default:false"`
	SellerVerified   bool    `gorm:"not null;default:false"`

	TotalSales    float64 `gorm:"not null;default:0"`
	TotalProducts int     `gorm:"not null;default:0"`
	SellerRating  float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Review represents a buyer review attached to a product
type Review struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	ProductID uuid.UUID   `json:"productId"`
	UserID    uuid.UUID   `json:"userId"`
	Rating    int         `json:"rating"`
	Comment   null.String `json:"comment,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ReviewCreateInput represents input for posting a review
type ReviewCreateInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SellerDecision is an admin review decision on a seller application.
type SellerDecision string

const (
	SellerDecisionApprove SellerDecision = "approved"
	SellerDecisionReject  SellerDecision = "rejected"
)

// SellerApplyInput represents input for applying as a seller
type SellerApplyInput struct {
	StoreName     string `json:"storeName" binding:"required,min=2,max=255"`
	SellerBio     string `json:"sellerBio" binding:"required,min=10,max=1024"`
	SellerAddress string `json:"sellerAddress" binding:"required,min=5,max=500"`
	SellerTaxID   string `json:"sellerTaxId" binding:"omitempty,max=50"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// SellerReviewInput represents an admin approve/reject request
type SellerReviewInput struct {
	Decision        SellerDecision `json:"decision" binding:"required"`
	RejectionReason string         `json:"rejectionReason" binding:"omitempty,max=500"`
}

// SellerApplicationResponse represents a seller application projection
type SellerApplicationResponse struct {
	UserID        uuid.UUID    `json:"userId"`
	Email         string       `json:"email"`
	StoreName     null.String  `json:"storeName"`
	SellerBio     null.String  `json:"sellerBio"`
	SellerAddress null.String  `json:"sellerAddress"`
	SellerTaxID   null.String  `json:"sellerTaxId"`
	Status        SellerStatus `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// SellerProfile represents the profile of an approved seller
type SellerProfile struct {
	UserID         uuid.UUID   `json:"userId"`
	Email          string      `json:"email"`
	Username       string      `json:"username"`
	StoreName      null.String `json:"storeName"`
	SellerBio      null.String `json:"sellerBio"`
	SellerAddress  null.String `json:"sellerAddress"`
	SellerTaxID    null.String `json:"sellerTaxId"`
	SellerVerified bool        `json:"sellerVerified"`
	TotalSales     float64     `json:"totalSales"`
	TotalProducts  int         `json:"totalProducts"`
	SellerRating   float64     `json:"sellerRating"`
	CreatedAt      time.Time   `json:"createdAt"`
}

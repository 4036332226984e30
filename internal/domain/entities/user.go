package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"
	UserRoleAdmin  UserRole = "admin"
)

// SellerStatus represents the seller application state stored on the user row.
// It is an explicit tag so rejected applicants stay distinguishable from users
// who never applied.
type SellerStatus string

const (
	SellerStatusNone     SellerStatus = "none"
	SellerStatusPending  SellerStatus = "pending"
	SellerStatusApproved SellerStatus = "approved"
	SellerStatusRejected SellerStatus = "rejected"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`

	// Seller qualification bundle. Unset while the user is not a seller
	// applicant.
	SellerStatus     SellerStatus `json:"sellerStatus"`
	StoreName        null.String  `json:"storeName,omitempty"`
	SellerBio        null.String  `json:"sellerBio,omitempty"`
	SellerAddress    null.String  `json:"sellerAddress,omitempty"`
	SellerTaxID      null.String  `json:"sellerTaxId,omitempty"`
	IsSellerApproved bool         `json:"isSellerApproved"`
	SellerVerified   bool         `json:"sellerVerified"`

	// Aggregate seller stats
	TotalSales    float64 `json:"totalSales"`
	TotalProducts int     `json:"totalProducts"`
	SellerRating  float64 `json:"sellerRating"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// DisplayName returns the public-facing seller name, falling back to the
// username when no store name is set.
func (u *User) DisplayName() string {
	if u.StoreName.Valid && u.StoreName.String != "" {
		return u.StoreName.String
	}
	return u.Username
}

// RegisterInput represents input for creating a user
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

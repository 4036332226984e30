package repositories

import (
	"context"

	"github.com/google/uuid"
	"digimart.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// ListSellers lists seller rows, optionally filtered by application
	// status, newest first.
	ListSellers(ctx context.Context, status entities.SellerStatus, offset, limit int) ([]*entities.User, error)
}

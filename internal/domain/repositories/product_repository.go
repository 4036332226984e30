package repositories

import (
	"context"

	"github.com/google/uuid"
	"digimart.backend/internal/domain/entities"
)

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	// GetByID returns a product in any lifecycle state, with derived
	// review aggregates populated.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error)
	// ListPublic lists publicly visible products per the catalog query and
	// returns the rows plus the total match count.
	ListPublic(ctx context.Context, q *entities.CatalogQuery) ([]*entities.CatalogItem, int64, error)
}

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error)
}

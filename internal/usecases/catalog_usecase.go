package usecases

import (
	"context"
	"strings"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/domain/repositories"
	"digimart.backend/pkg/utils"
)

var catalogSortKeys = map[string]bool{
	entities.CatalogSortCreatedAt:     true,
	entities.CatalogSortPrice:         true,
	entities.CatalogSortSoldCount:     true,
	entities.CatalogSortAverageRating: true,
}

// CatalogUsecase serves the public storefront listing
type CatalogUsecase struct {
	productRepo repositories.ProductRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(productRepo repositories.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// ListPublic returns visible products matching the query along with the
// total match count. Unknown sort keys fall back to newest-first.
func (u *CatalogUsecase) ListPublic(ctx context.Context, q *entities.CatalogQuery) ([]*entities.CatalogItem, int64, error) {
	normalized := *q

	normalized.SortBy = strings.ToLower(strings.TrimSpace(q.SortBy))
	if !catalogSortKeys[normalized.SortBy] {
		normalized.SortBy = entities.CatalogSortCreatedAt
	}
	switch strings.ToLower(strings.TrimSpace(q.SortDir)) {
	case "asc":
		normalized.SortDir = "asc"
	default:
		normalized.SortDir = "desc"
	}

	window := utils.GetPageWindow(q.Offset, q.Limit, DefaultListLimit, MaxListLimit)
	normalized.Offset = window.Offset
	normalized.Limit = window.Limit

	normalized.Category = strings.TrimSpace(q.Category)
	normalized.Search = strings.TrimSpace(q.Search)

	return u.productRepo.ListPublic(ctx, &normalized)
}

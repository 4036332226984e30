package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Catalog sort keys
const (
	CatalogSortCreatedAt     = "created_at"
	CatalogSortPrice         = "price"
	CatalogSortSoldCount     = "sold_count"
	CatalogSortAverageRating = "average_rating"
)

// CatalogQuery holds public listing filters, sorting and pagination.
type CatalogQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy"`
	SortDir  string `form:"sortDir"`
	Offset   int    `form:"offset"`
	Limit    int    `form:"limit"`
}

// CatalogItem is the public-safe projection of a listed product. It carries
// the seller display name and rating as of query time and never exposes the
// main asset reference.
type CatalogItem struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	ShortDescription null.String  `json:"shortDescription,omitempty"`
	Category         null.String  `json:"category,omitempty"`
	Price            float64      `json:"price"`
	CompareAtPrice   null.Float64 `json:"compareAtPrice,omitempty"`
	ThumbnailRef     null.String  `json:"thumbnailRef,omitempty"`
	SoldCount        int          `json:"soldCount"`
	AverageRating    float64      `json:"averageRating"`
	ReviewCount      int          `json:"reviewCount"`
	SellerName       string       `json:"sellerName"`
	SellerRating     float64      `json:"sellerRating"`
	CreatedAt        time.Time    `json:"createdAt"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProductStatus represents a product lifecycle state
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPending   ProductStatus = "pending"
	ProductStatusActive    ProductStatus = "active"
	ProductStatusSuspended ProductStatus = "suspended"
	ProductStatusArchived  ProductStatus = "archived"
)

// ValidProductStatus reports whether s names a known lifecycle state.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusDraft, ProductStatusPending, ProductStatusActive,
		ProductStatusSuspended, ProductStatusArchived:
		return true
	}
	return false
}

// Product represents a digital product entity
type Product struct {
	ID               uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	SellerID         uuid.UUID   `json:"sellerId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ShortDescription null.String `json:"shortDescription,omitempty"`
	Category         null.String `json:"category,omitempty"`

	Price          float64      `json:"price"`
	CompareAtPrice null.Float64 `json:"compareAtPrice,omitempty"`

	// Digital asset references (opaque blob store keys)
	FileRef      string      `json:"fileRef"`
	FileSize     int64       `json:"fileSize"`
	FileType     string      `json:"fileType"`
	ThumbnailRef null.String `json:"thumbnailRef,omitempty"`

	Status   ProductStatus `json:"status"`
	IsActive bool          `json:"isActive"`

	StockQuantity int `json:"stockQuantity"` // -1 = unlimited
	SoldCount     int `json:"soldCount"`

	// Derived from reviews at query time, never stored
	AverageRating float64 `json:"averageRating" gorm:"-"`
	ReviewCount   int     `json:"reviewCount" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PubliclyVisible reports whether the product may be served to buyers.
func (p *Product) PubliclyVisible() bool {
	return p.IsActive && p.Status == ProductStatusActive
}

// AssetUpload carries an uploaded file through validation and storage.
type AssetUpload struct {
	Data        []byte
	ContentType string
}

// Size returns the upload size in bytes.
func (a *AssetUpload) Size() int64 { return int64(len(a.Data)) }

// ProductCreateInput represents input for creating a product
type ProductCreateInput struct {
	Title            string        `form:"title" json:"title" binding:"required,min=1,max=200"`
	Description      string        `form:"description" json:"description" binding:"required"`
	ShortDescription string        `form:"shortDescription" json:"shortDescription" binding:"omitempty,max=500"`
	Category         string        `form:"category" json:"category" binding:"omitempty,max=100"`
	Price            float64       `form:"price" json:"price" binding:"required,gt=0"`
	CompareAtPrice   float64       `form:"compareAtPrice" json:"compareAtPrice" binding:"omitempty,gt=0"`
	StockQuantity    *int          `form:"stockQuantity" json:"stockQuantity" binding:"omitempty,min=-1"`
	Status           ProductStatus `form:"status" json:"status" binding:"omitempty"`
}

// ProductUpdateInput enumerates every externally mutable product field.
// Each field carries its own present/absent marker; absent fields are left
// untouched. Seller ID and sold count are deliberately not settable.
type ProductUpdateInput struct {
	Title            null.String  `json:"title"`
	Description      null.String  `json:"description"`
	ShortDescription null.String  `json:"shortDescription"`
	Category         null.String  `json:"category"`
	Price            null.Float64 `json:"price"`
	CompareAtPrice   null.Float64 `json:"compareAtPrice"`
	StockQuantity    null.Int     `json:"stockQuantity"`
	IsActive         null.Bool    `json:"isActive"`
	Status           null.String  `json:"status"`
}

// Empty reports whether no field is present in the partial update.
func (in *ProductUpdateInput) Empty() bool {
	return !in.Title.Valid && !in.Description.Valid && !in.ShortDescription.Valid &&
		!in.Category.Valid && !in.Price.Valid && !in.CompareAtPrice.Valid &&
		!in.StockQuantity.Valid && !in.IsActive.Valid && !in.Status.Valid
}

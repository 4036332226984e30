package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
	"digimart.backend/internal/infrastructure/models"
)

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m := productToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a product by ID in any lifecycle state. Review aggregates are
// computed at query time.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	product := productToEntity(&m)
	if err := r.attachReviewStats(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update writes the mutable fields of a product
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	updates := map[string]interface{}{
		"title":             product.Title,
		"description":       product.Description,
		"short_description": product.ShortDescription.Ptr(),
		"category":          product.Category.Ptr(),
		"price":             product.Price,
		"compare_at_price":  product.CompareAtPrice.Ptr(),
		"file_ref":          product.FileRef,
		"file_size":         product.FileSize,
		"file_type":         product.FileType,
		"thumbnail_ref":     product.ThumbnailRef.Ptr(),
		"status":            product.Status,
		"is_active":         product.IsActive,
		"stock_quantity":    product.StockQuantity,
		"sold_count":        product.SoldCount,
		"updated_at":        time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListBySeller lists all products owned by a seller regardless of status,
// newest first.
func (r *ProductRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Product, error) {
	var productModels []models.Product
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		p := productToEntity(&productModels[i])
		if err := r.attachReviewStats(ctx, p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

var catalogSortColumns = map[string]string{
	entities.CatalogSortCreatedAt:     "p.created_at",
	entities.CatalogSortPrice:         "p.price",
	entities.CatalogSortSoldCount:     "p.sold_count",
	entities.CatalogSortAverageRating: "average_rating",
}

// ListPublic lists publicly visible products joined with their seller and
// review aggregates.
func (r *ProductRepository) ListPublic(ctx context.Context, q *entities.CatalogQuery) ([]*entities.CatalogItem, int64, error) {
	base := r.db.WithContext(ctx).
		Table("products p").
		Joins("JOIN users u ON u.id = p.seller_id").
		Where("p.is_active = ? AND p.status = ?", true, entities.ProductStatusActive)

	if q.Category != "" {
		base = base.Where("p.category = ?", q.Category)
	}
	if q.Search != "" {
		term := "%" + strings.ToLower(q.Search) + "%"
		base = base.Where("LOWER(p.title) LIKE ? OR LOWER(p.description) LIKE ?", term, term)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortCol, ok := catalogSortColumns[q.SortBy]
	if !ok {
		sortCol = "p.created_at"
	}
	dir := "DESC"
	if strings.EqualFold(q.SortDir, "asc") {
		dir = "ASC"
	}

	rows := base.Session(&gorm.Session{}).
		Select(`p.id, p.title, p.short_description, p.category, p.price, p.compare_at_price,
			p.thumbnail_ref, p.sold_count, p.created_at,
			COALESCE(AVG(rv.rating), 0) AS average_rating,
			COUNT(rv.id) AS review_count,
			COALESCE(u.store_name, u.username) AS seller_name,
			u.seller_rating AS seller_rating`).
		Joins("LEFT JOIN reviews rv ON rv.product_id = p.id").
		Group("p.id, u.id").
		Order(sortCol + " " + dir)

	if q.Offset > 0 {
		rows = rows.Offset(q.Offset)
	}
	if q.Limit > 0 {
		rows = rows.Limit(q.Limit)
	}

	var items []*entities.CatalogItem
	if err := rows.Scan(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ProductRepository) attachReviewStats(ctx context.Context, p *entities.Product) error {
	var stats struct {
		AverageRating float64
		ReviewCount   int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(id) AS review_count").
		Where("product_id = ?", p.ID).
		Scan(&stats).Error
	if err != nil {
		return err
	}
	p.AverageRating = stats.AverageRating
	p.ReviewCount = stats.ReviewCount
	return nil
}

func productToModel(p *entities.Product) *models.Product {
	return &models.Product{
		ID:               p.ID,
		SellerID:         p.SellerID,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription.Ptr(),
		Category:         p.Category.Ptr(),
		Price:            p.Price,
		CompareAtPrice:   p.CompareAtPrice.Ptr(),
		FileRef:          p.FileRef,
		FileSize:         p.FileSize,
		FileType:         p.FileType,
		ThumbnailRef:     p.ThumbnailRef.Ptr(),
		Status:           string(p.Status),
		IsActive:         p.IsActive,
		StockQuantity:    p.StockQuantity,
		SoldCount:        p.SoldCount,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:               m.ID,
		SellerID:         m.SellerID,
		Title:            m.Title,
		Description:      m.Description,
		ShortDescription: null.StringFromPtr(m.ShortDescription),
		Category:         null.StringFromPtr(m.Category),
		Price:            m.Price,
		CompareAtPrice:   null.Float64FromPtr(m.CompareAtPrice),
		FileRef:          m.FileRef,
		FileSize:         m.FileSize,
		FileType:         m.FileType,
		ThumbnailRef:     null.StringFromPtr(m.ThumbnailRef),
		Status:           entities.ProductStatus(m.Status),
		IsActive:         m.IsActive,
		StockQuantity:    m.StockQuantity,
		SoldCount:        m.SoldCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

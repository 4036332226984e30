package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/infrastructure/models"
)

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	m := &models.Review{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment.Ptr(),
		CreatedAt: review.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.CreatedAt = m.CreatedAt
	return nil
}

// ListByProduct lists reviews for a product, newest first
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error) {
	var reviewModels []models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for _, m := range reviewModels {
		reviews = append(reviews, &entities.Review{
			ID:        m.ID,
			ProductID: m.ProductID,
			UserID:    m.UserID,
			Rating:    m.Rating,
			Comment:   null.StringFromPtr(m.Comment),
			CreatedAt: m.CreatedAt,
		})
	}
	return reviews, nil
}

package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
	"digimart.backend/internal/domain/repositories"
)

// ReviewUsecase handles product reviews
type ReviewUsecase struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo}
}

// Create posts a review on a publicly visible product. Reviews on hidden
// products fail the same way as reviews on missing ones.
func (u *ReviewUsecase) Create(ctx context.Context, userID, productID uuid.UUID, input *entities.ReviewCreateInput) (*entities.Review, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.PubliclyVisible() {
		return nil, domainerrors.ErrNotFound
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.BadRequest("rating must be between 1 and 5")
	}

	review := &entities.Review{
		ProductID: product.ID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   null.NewString(input.Comment, input.Comment != ""),
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByProduct lists reviews for a publicly visible product.
func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entities.Review, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.PubliclyVisible() {
		return nil, domainerrors.ErrNotFound
	}
	return u.reviewRepo.ListByProduct(ctx, product.ID)
}

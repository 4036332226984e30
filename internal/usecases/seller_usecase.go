package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
	"digimart.backend/internal/domain/policy"
	"digimart.backend/internal/domain/repositories"
	"digimart.backend/pkg/utils"
)

// SellerUsecase handles the seller application workflow
type SellerUsecase struct {
	userRepo repositories.UserRepository
}

// NewSellerUsecase creates a new seller usecase
func NewSellerUsecase(userRepo repositories.UserRepository) *SellerUsecase {
	return &SellerUsecase{userRepo: userRepo}
}

// Apply submits a seller application for the acting user. The user becomes a
// pending seller; approval is a separate admin decision.
func (u *SellerUsecase) Apply(ctx context.Context, userID uuid.UUID, input *entities.SellerApplyInput) (*entities.SellerApplicationResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == entities.UserRoleSeller {
		return nil, domainerrors.ErrAlreadySeller
	}
	if user.IsSellerApproved {
		return nil, domainerrors.ErrAlreadyApproved
	}
	if user.StoreName.Valid {
		return nil, domainerrors.ErrDuplicateApplication
	}
	if !input.TermsAccepted {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	user.Role = entities.UserRoleSeller
	user.SellerStatus = entities.SellerStatusPending
	user.StoreName = null.StringFrom(input.StoreName)
	user.SellerBio = null.StringFrom(input.SellerBio)
	user.SellerAddress = null.StringFrom(input.SellerAddress)
	user.SellerTaxID = null.NewString(input.SellerTaxID, input.SellerTaxID != "")
	user.IsSellerApproved = false

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return applicationResponse(user), nil
}

// Review applies an admin approve/reject decision to a pending applicant.
// Reject wipes the qualification fields and reverts the role to buyer; only
// the stored application status keeps the rejection visible.
func (u *SellerUsecase) Review(ctx context.Context, adminID, targetID uuid.UUID, input *entities.SellerReviewInput) (*entities.SellerApplicationResponse, error) {
	admin, err := u.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if err := policy.IsAdmin(admin); err != nil {
		return nil, err
	}

	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role != entities.UserRoleSeller {
		return nil, domainerrors.ErrTargetNotApplicant
	}

	switch input.Decision {
	case entities.SellerDecisionApprove:
		target.IsSellerApproved = true
		target.SellerVerified = true
		target.SellerStatus = entities.SellerStatusApproved
	case entities.SellerDecisionReject:
		target.StoreName = null.String{}
		target.SellerBio = null.String{}
		target.SellerAddress = null.String{}
		target.SellerTaxID = null.String{}
		target.IsSellerApproved = false
		target.Role = entities.UserRoleBuyer
		target.SellerStatus = entities.SellerStatusRejected
	default:
		return nil, domainerrors.ErrInvalidDecision
	}

	if err := u.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	return applicationResponse(target), nil
}

// Status returns the acting user's application status. Users outside the
// seller role have no application to report, rejected ones included.
func (u *SellerUsecase) Status(ctx context.Context, userID uuid.UUID) (*entities.SellerApplicationResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleSeller {
		return nil, domainerrors.ErrNoApplication
	}
	return applicationResponse(user), nil
}

// Profile returns the seller profile for an approved seller.
func (u *SellerUsecase) Profile(ctx context.Context, userID uuid.UUID) (*entities.SellerProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.IsApprovedSeller(user); err != nil {
		return nil, err
	}
	return sellerProfile(user), nil
}

// ListApplications lists seller applications for admin review, optionally
// filtered by application status.
func (u *SellerUsecase) ListApplications(ctx context.Context, status string, offset, limit int) ([]*entities.SellerApplicationResponse, error) {
	filter := entities.SellerStatus(status)
	switch filter {
	case "", entities.SellerStatusPending, entities.SellerStatusApproved, entities.SellerStatusRejected:
	default:
		return nil, domainerrors.ErrBadRequest
	}

	window := utils.GetPageWindow(offset, limit, DefaultListLimit, MaxListLimit)
	users, err := u.userRepo.ListSellers(ctx, filter, window.Offset, window.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*entities.SellerApplicationResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, applicationResponse(user))
	}
	return responses, nil
}

// GetApplicant returns detailed seller information for admin review.
func (u *SellerUsecase) GetApplicant(ctx context.Context, targetID uuid.UUID) (*entities.SellerProfile, error) {
	user, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleSeller && user.SellerStatus == entities.SellerStatusNone {
		return nil, domainerrors.ErrNotFound
	}
	return sellerProfile(user), nil
}

func applicationResponse(user *entities.User) *entities.SellerApplicationResponse {
	return &entities.SellerApplicationResponse{
		UserID:        user.ID,
		Email:         user.Email,
		StoreName:     user.StoreName,
		SellerBio:     user.SellerBio,
		SellerAddress: user.SellerAddress,
		SellerTaxID:   user.SellerTaxID,
		Status:        user.SellerStatus,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func sellerProfile(user *entities.User) *entities.SellerProfile {
	return &entities.SellerProfile{
		UserID:         user.ID,
		Email:          user.Email,
		Username:       user.Username,
		StoreName:      user.StoreName,
		SellerBio:      user.SellerBio,
		SellerAddress:  user.SellerAddress,
		SellerTaxID:    user.SellerTaxID,
		SellerVerified: user.SellerVerified,
		TotalSales:     user.TotalSales,
		TotalProducts:  user.TotalProducts,
		SellerRating:   user.SellerRating,
		CreatedAt:      user.CreatedAt,
	}
}

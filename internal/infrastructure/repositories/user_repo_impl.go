package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
	"digimart.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update writes the workflow-mutable fields of a user. Qualification fields
// are written unconditionally so a reject can clear them back to NULL.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"role":               user.Role,
		"seller_status":      user.SellerStatus,
		"store_name":         user.StoreName.Ptr(),
		"seller_bio":         user.SellerBio.Ptr(),
		"seller_address":     user.SellerAddress.Ptr(),
		"seller_tax_id":      user.SellerTaxID.Ptr(),
		"is_seller_approved": user.IsSellerApproved,
		"seller_verified":    user.SellerVerified,
		"total_sales":        user.TotalSales,
		"total_products":     user.TotalProducts,
		"seller_rating":      user.SellerRating,
		"updated_at":         time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListSellers lists seller rows, newest first, optionally filtered by
// application status.
func (r *UserRepository) ListSellers(ctx context.Context, status entities.SellerStatus, offset, limit int) ([]*entities.User, error) {
	query := r.db.WithContext(ctx).
		Where("role = ? OR seller_status <> ?", entities.UserRoleSeller, entities.SellerStatusNone).
		Order("created_at DESC")

	if status != "" {
		query = query.Where("seller_status = ?", status)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		PasswordHash:     u.PasswordHash,
		Role:             string(u.Role),
		SellerStatus:     string(u.SellerStatus),
		StoreName:        u.StoreName.Ptr(),
		SellerBio:        u.SellerBio.Ptr(),
		SellerAddress:    u.SellerAddress.Ptr(),
		SellerTaxID:      u.SellerTaxID.Ptr(),
		IsSellerApproved: u.IsSellerApproved,
		SellerVerified:   u.SellerVerified,
		TotalSales:       u.TotalSales,
		TotalProducts:    u.TotalProducts,
		SellerRating:     u.SellerRating,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:               m.ID,
		Email:            m.Email,
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		Role:             entities.UserRole(m.Role),
		SellerStatus:     entities.SellerStatus(m.SellerStatus),
		StoreName:        null.StringFromPtr(m.StoreName),
		SellerBio:        null.StringFromPtr(m.SellerBio),
		SellerAddress:    null.StringFromPtr(m.SellerAddress),
		SellerTaxID:      null.StringFromPtr(m.SellerTaxID),
		IsSellerApproved: m.IsSellerApproved,
		SellerVerified:   m.SellerVerified,
		TotalSales:       m.TotalSales,
		TotalProducts:    m.TotalProducts,
		SellerRating:     m.SellerRating,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

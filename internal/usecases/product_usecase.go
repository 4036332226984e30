package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"digimart.backend/internal/config"
	"digimart.backend/internal/domain/entities"
	domainerrors "digimart.backend/internal/domain/errors"
	"digimart.backend/internal/domain/policy"
	"digimart.backend/internal/domain/repositories"
	"digimart.backend/pkg/logger"
)

// AssetCleanup discards a stored blob. It never reports failure to the
// caller; cleanup problems are logged and swallowed so the primary operation
// is unaffected.
type AssetCleanup func(ctx context.Context, ref string)

// ProductUsecase handles the product lifecycle
type ProductUsecase struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	blobs       repositories.BlobStore
	limits      config.UploadConfig
	cleanup     AssetCleanup
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	blobs repositories.BlobStore,
	limits config.UploadConfig,
) *ProductUsecase {
	u := &ProductUsecase{
		productRepo: productRepo,
		userRepo:    userRepo,
		blobs:       blobs,
		limits:      limits,
	}
	u.cleanup = u.discardBlob
	return u
}

// Create creates a product for an approved seller. The asset is validated
// fully before anything is stored.
func (u *ProductUsecase) Create(ctx context.Context, actorID uuid.UUID, input *entities.ProductCreateInput, asset, thumbnail *entities.AssetUpload) (*entities.Product, error) {
	actor, err := u.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := policy.IsApprovedSeller(actor); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.ProductStatusActive
	}
	if !entities.ValidProductStatus(status) {
		return nil, domainerrors.BadRequest("unknown product status")
	}

	if asset == nil {
		return nil, domainerrors.BadRequest("product asset is required")
	}
	ext, err := u.validateAsset(asset)
	if err != nil {
		return nil, err
	}
	if thumbnail != nil {
		if _, err := u.validateThumbnail(thumbnail); err != nil {
			return nil, err
		}
	}

	stock := -1
	if input.StockQuantity != nil {
		stock = *input.StockQuantity
	}

	fileRef, err := u.blobs.Put(ctx, asset.Data, asset.ContentType)
	if err != nil {
		return nil, err
	}

	var thumbRef null.String
	if thumbnail != nil {
		ref, err := u.blobs.Put(ctx, thumbnail.Data, thumbnail.ContentType)
		if err != nil {
			u.cleanup(ctx, fileRef)
			return nil, err
		}
		thumbRef = null.StringFrom(ref)
	}

	product := &entities.Product{
		SellerID:         actor.ID,
		Title:            input.Title,
		Description:      input.Description,
		ShortDescription: null.NewString(input.ShortDescription, input.ShortDescription != ""),
		Category:         null.NewString(input.Category, input.Category != ""),
		Price:            input.Price,
		CompareAtPrice:   null.NewFloat64(input.CompareAtPrice, input.CompareAtPrice > 0),
		FileRef:          fileRef,
		FileSize:         asset.Size(),
		FileType:         ext,
		ThumbnailRef:     thumbRef,
		Status:           status,
		IsActive:         true,
		StockQuantity:    stock,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.cleanup(ctx, fileRef)
		if thumbRef.Valid {
			u.cleanup(ctx, thumbRef.String)
		}
		return nil, err
	}
	return product, nil
}

// Update applies a partial update to an owned product. Only present fields
// are applied. Replaced blobs are discarded best-effort after the record is
// committed; a cleanup failure never fails the request.
func (u *ProductUsecase) Update(ctx context.Context, actorID, productID uuid.UUID, input *entities.ProductUpdateInput, newAsset, newThumbnail *entities.AssetUpload) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	actor, err := u.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := policy.IsOwner(actor, product); err != nil {
		return nil, err
	}

	// Validate everything before any mutation is persisted.
	if input.Price.Valid && input.Price.Float64 <= 0 {
		return nil, domainerrors.BadRequest("price must be greater than zero")
	}
	if input.StockQuantity.Valid && input.StockQuantity.Int < -1 {
		return nil, domainerrors.BadRequest("stock quantity must be -1 or greater")
	}
	if input.Status.Valid && !entities.ValidProductStatus(entities.ProductStatus(input.Status.String)) {
		return nil, domainerrors.BadRequest("unknown product status")
	}
	var newExt string
	if newAsset != nil {
		if newExt, err = u.validateAsset(newAsset); err != nil {
			return nil, err
		}
	}
	if newThumbnail != nil {
		if _, err := u.validateThumbnail(newThumbnail); err != nil {
			return nil, err
		}
	}

	if input.Title.Valid {
		product.Title = input.Title.String
	}
	if input.Description.Valid {
		product.Description = input.Description.String
	}
	if input.ShortDescription.Valid {
		product.ShortDescription = input.ShortDescription
	}
	if input.Category.Valid {
		product.Category = input.Category
	}
	if input.Price.Valid {
		product.Price = input.Price.Float64
	}
	if input.CompareAtPrice.Valid {
		product.CompareAtPrice = input.CompareAtPrice
	}
	if input.StockQuantity.Valid {
		product.StockQuantity = input.StockQuantity.Int
	}
	if input.IsActive.Valid {
		product.IsActive = input.IsActive.Bool
	}
	if input.Status.Valid {
		product.Status = entities.ProductStatus(input.Status.String)
	}

	var oldAssetRef, oldThumbRef string
	if newAsset != nil {
		ref, err := u.blobs.Put(ctx, newAsset.Data, newAsset.ContentType)
		if err != nil {
			return nil, err
		}
		oldAssetRef = product.FileRef
		product.FileRef = ref
		product.FileSize = newAsset.Size()
		product.FileType = newExt
	}
	if newThumbnail != nil {
		ref, err := u.blobs.Put(ctx, newThumbnail.Data, newThumbnail.ContentType)
		if err != nil {
			if newAsset != nil {
				u.cleanup(ctx, product.FileRef)
			}
			return nil, err
		}
		if product.ThumbnailRef.Valid {
			oldThumbRef = product.ThumbnailRef.String
		}
		product.ThumbnailRef = null.StringFrom(ref)
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if oldAssetRef != "" {
		u.cleanup(ctx, oldAssetRef)
	}
	if oldThumbRef != "" {
		u.cleanup(ctx, oldThumbRef)
	}
	return product, nil
}

// Delete archives an owned product. The underlying blobs stay in the store.
func (u *ProductUsecase) Delete(ctx context.Context, actorID, productID uuid.UUID) error {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	actor, err := u.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if err := policy.IsOwner(actor, product); err != nil {
		return err
	}

	product.Status = entities.ProductStatusArchived
	product.IsActive = false
	return u.productRepo.Update(ctx, product)
}

// GetPublic returns a product for public viewing. Inactive and nonexistent
// products are indistinguishable to the caller.
func (u *ProductUsecase) GetPublic(ctx context.Context, productID uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.PubliclyVisible() {
		return nil, domainerrors.ErrNotFound
	}
	return product, nil
}

// ListMine lists all of an approved seller's own products regardless of
// status or visibility.
func (u *ProductUsecase) ListMine(ctx context.Context, actorID uuid.UUID) ([]*entities.Product, error) {
	actor, err := u.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := policy.IsApprovedSeller(actor); err != nil {
		return nil, err
	}
	return u.productRepo.ListBySeller(ctx, actor.ID)
}

// Moderate applies an admin moderation transition. Admins do not get a
// general edit bypass; changing the lifecycle state is the only admin
// mutation on products.
func (u *ProductUsecase) Moderate(ctx context.Context, adminID, productID uuid.UUID, status entities.ProductStatus) (*entities.Product, error) {
	admin, err := u.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if err := policy.IsAdmin(admin); err != nil {
		return nil, err
	}

	switch status {
	case entities.ProductStatusActive, entities.ProductStatusSuspended, entities.ProductStatusPending:
	default:
		return nil, domainerrors.ErrInvalidDecision
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.Status = status
	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (u *ProductUsecase) validateAsset(asset *entities.AssetUpload) (string, error) {
	if asset.Size() > u.limits.MaxAssetSize {
		return "", domainerrors.ErrAssetTooLarge
	}
	ext, ok := assetExtensions[asset.ContentType]
	if !ok {
		return "", domainerrors.ErrAssetTypeNotAllowed
	}
	return ext, nil
}

func (u *ProductUsecase) validateThumbnail(thumbnail *entities.AssetUpload) (string, error) {
	if thumbnail.Size() > u.limits.MaxThumbnailSize {
		return "", domainerrors.ErrAssetTooLarge
	}
	ext, ok := thumbnailExtensions[thumbnail.ContentType]
	if !ok {
		return "", domainerrors.ErrThumbnailTypeNotAllowed
	}
	return ext, nil
}

func (u *ProductUsecase) discardBlob(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := u.blobs.Delete(ctx, ref); err != nil {
		logger.Warn(ctx, "failed to delete replaced blob",
			zap.String("ref", ref),
			zap.Error(err),
		)
	}
}

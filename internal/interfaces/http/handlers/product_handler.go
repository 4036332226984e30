package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/interfaces/http/middleware"
	"digimart.backend/internal/interfaces/http/response"
	"digimart.backend/internal/usecases"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// Create creates a product from a multipart form carrying the metadata
// fields plus an "asset" file and an optional "thumbnail" file
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.ProductCreateInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	asset, err := readFormFile(c, "asset")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "product asset file is required")
		return
	}
	thumbnail, err := readOptionalFormFile(c, "thumbnail")
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "failed to read thumbnail")
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), userID, &input, asset, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// Update applies a JSON partial update to an owned product
// PATCH /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	var input entities.ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	product, err := h.productUsecase.Update(c.Request.Context(), userID, productID, &input, nil, nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// ReplaceAsset replaces the main digital asset of an owned product
// PUT /api/v1/products/:id/asset
func (h *ProductHandler) ReplaceAsset(c *gin.Context) {
	h.replaceFile(c, "asset")
}

// ReplaceThumbnail replaces the thumbnail of an owned product
// PUT /api/v1/products/:id/thumbnail
func (h *ProductHandler) ReplaceThumbnail(c *gin.Context) {
	h.replaceFile(c, "thumbnail")
}

func (h *ProductHandler) replaceFile(c *gin.Context, field string) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	upload, err := readFormFile(c, field)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, field+" file is required")
		return
	}

	var input entities.ProductUpdateInput
	var asset, thumbnail *entities.AssetUpload
	if field == "asset" {
		asset = upload
	} else {
		thumbnail = upload
	}

	product, err := h.productUsecase.Update(c.Request.Context(), userID, productID, &input, asset, thumbnail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

// Delete archives an owned product
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.productUsecase.Delete(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "product archived"})
}

// ListMine lists the current seller's products
// GET /api/v1/products/mine
func (h *ProductHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	products, err := h.productUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetPublic returns a single product for public viewing. The asset reference
// never appears in the public projection.
// GET /api/v1/products/:id
func (h *ProductHandler) GetPublic(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := h.productUsecase.GetPublic(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, publicProduct(product))
}

func publicProduct(p *entities.Product) gin.H {
	return gin.H{
		"id":               p.ID,
		"sellerId":         p.SellerID,
		"title":            p.Title,
		"description":      p.Description,
		"shortDescription": p.ShortDescription,
		"category":         p.Category,
		"price":            p.Price,
		"compareAtPrice":   p.CompareAtPrice,
		"fileType":         p.FileType,
		"thumbnailRef":     p.ThumbnailRef,
		"stockQuantity":    p.StockQuantity,
		"soldCount":        p.SoldCount,
		"averageRating":    p.AverageRating,
		"reviewCount":      p.ReviewCount,
		"createdAt":        p.CreatedAt,
	}
}

func readFormFile(c *gin.Context, field string) (*entities.AssetUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	return readFileHeader(header)
}

func readOptionalFormFile(c *gin.Context, field string) (*entities.AssetUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	return readFileHeader(header)
}

func readFileHeader(header *multipart.FileHeader) (*entities.AssetUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &entities.AssetUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

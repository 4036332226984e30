package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/interfaces/http/middleware"
	"digimart.backend/internal/interfaces/http/response"
	"digimart.backend/internal/usecases"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	sellerUsecase  *usecases.SellerUsecase
	productUsecase *usecases.ProductUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(sellerUsecase *usecases.SellerUsecase, productUsecase *usecases.ProductUsecase) *AdminHandler {
	return &AdminHandler{
		sellerUsecase:  sellerUsecase,
		productUsecase: productUsecase,
	}
}

// ListApplications lists seller applications, optionally filtered by status
// GET /api/v1/admin/sellers?status=pending&offset=0&limit=20
func (h *AdminHandler) ListApplications(c *gin.Context) {
	status := c.Query("status")
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	applications, err := h.sellerUsecase.ListApplications(c.Request.Context(), status, offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": applications,
		"count":        len(applications),
	})
}

// GetApplicant returns one applicant's seller details
// GET /api/v1/admin/sellers/:id
func (h *AdminHandler) GetApplicant(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	applicant, err := h.sellerUsecase.GetApplicant(c.Request.Context(), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, applicant)
}

// ReviewApplication approves or rejects a seller application
// POST /api/v1/admin/sellers/:id/review
func (h *AdminHandler) ReviewApplication(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	var input entities.SellerReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.sellerUsecase.Review(c.Request.Context(), adminID, targetID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ModerateProduct applies an admin lifecycle transition to a product
// POST /api/v1/admin/products/:id/moderate
func (h *AdminHandler) ModerateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	var input struct {
		Status entities.ProductStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	product, err := h.productUsecase.Moderate(c.Request.Context(), adminID, productID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, product)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/interfaces/http/middleware"
	"digimart.backend/internal/interfaces/http/response"
	"digimart.backend/internal/usecases"
)

// SellerHandler handles seller application endpoints
type SellerHandler struct {
	sellerUsecase *usecases.SellerUsecase
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(sellerUsecase *usecases.SellerUsecase) *SellerHandler {
	return &SellerHandler{sellerUsecase: sellerUsecase}
}

// Apply submits a seller application for the current user
// POST /api/v1/sellers/apply
func (h *SellerHandler) Apply(c *gin.Context) {
	var input entities.SellerApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	application, err := h.sellerUsecase.Apply(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, application)
}

// Status returns the current user's application state
// GET /api/v1/sellers/status
func (h *SellerHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	application, err := h.sellerUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, application)
}

// Profile returns the current approved seller's profile
// GET /api/v1/sellers/profile
func (h *SellerHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.sellerUsecase.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/interfaces/http/response"
	"digimart.backend/internal/usecases"
)

// CatalogHandler handles the public storefront listing
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// List returns visible products matching the query filters
// GET /api/v1/catalog?category=&search=&sortBy=&sortDir=&offset=&limit=
func (h *CatalogHandler) List(c *gin.Context) {
	var query entities.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, total, err := h.catalogUsecase.ListPublic(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

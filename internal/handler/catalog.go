package handler

import (
	"net/http"

	"github.com/SyaefulAxl/meliyah-backend/internal/apierror"
	"github.com/SyaefulAxl/meliyah-backend/internal/dto"
	"github.com/SyaefulAxl/meliyah-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Categories GET /api/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	resp, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Types GET /api/types?category_id=<id>
// Without category_id all types are returned.
func (h *CatalogHandler) Types(c *gin.Context) {
	var filter dto.TypeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category_id"))
		return
	}
	resp, err := h.svc.Types(c.Request.Context(), filter.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

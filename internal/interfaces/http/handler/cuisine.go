package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/foodcourt/storefront/internal/application/catalog"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// CuisineHandler serves the admin cuisine management endpoints.
// The route spells cuisine without the trailing e, which the console and
// storefront both rely on.
type CuisineHandler struct {
	BaseHandler
	cuisineService *appcatalog.CuisineService
}

// NewCuisineHandler creates a new CuisineHandler
func NewCuisineHandler(cuisineService *appcatalog.CuisineService) *CuisineHandler {
	return &CuisineHandler{cuisineService: cuisineService}
}

// RegisterRoutes registers cuisine management routes
func (h *CuisineHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cuisin", h.List)
	rg.POST("/cuisin", h.Create)
}

// List handles GET /api/cuisin
func (h *CuisineHandler) List(c *gin.Context) {
	cuisines, err := h.cuisineService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.NewDataResponse(cuisines))
}

// Create handles POST /api/cuisin
func (h *CuisineHandler) Create(c *gin.Context) {
	var req appcatalog.CreateCuisineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, "The given data was invalid.", err)
		return
	}

	cuisine, err := h.cuisineService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cuisine)
}

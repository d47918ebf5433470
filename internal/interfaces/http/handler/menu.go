package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/foodcourt/storefront/internal/application/catalog"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// MenuHandler serves the public cuisine-grouped menu
type MenuHandler struct {
	BaseHandler
	menuService *appcatalog.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *appcatalog.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// RegisterRoutes registers menu routes
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cuisines-with-food", h.CuisinesWithFood)
}

// CuisinesWithFood handles GET /api/cuisines-with-food
func (h *MenuHandler) CuisinesWithFood(c *gin.Context) {
	cuisines, err := h.menuService.CuisinesWithFood(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.NewDataResponse(cuisines))
}

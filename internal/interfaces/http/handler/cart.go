package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/foodcourt/storefront/internal/application/cart"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// CartHandler serves the guest cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *appcart.GuestCartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *appcart.GuestCartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers guest cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cart/guest/:token", h.Get)
	rg.POST("/cart/guest/add", h.SetItem)
}

// Get handles GET /api/cart/guest/:token
func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.cartService.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.CartResponse{CartItems: items})
}

// SetItem handles POST /api/cart/guest/add. The payload carries the full
// desired quantity for one line; 0 removes it.
func (h *CartHandler) SetItem(c *gin.Context) {
	var req appcart.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, "The given data was invalid.", err)
		return
	}

	if _, err := h.cartService.SetItem(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Cart updated.")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apporder "github.com/foodcourt/storefront/internal/application/order"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// delivery detail fields that share one submission-level message
var deliveryFields = map[string]bool{
	"customer_name":    true,
	"delivery_address": true,
	"phone_number":     true,
}

// OrderHandler serves checkout submission
type OrderHandler struct {
	BaseHandler
	placeOrderService *apporder.PlaceOrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(placeOrderService *apporder.PlaceOrderService) *OrderHandler {
	return &OrderHandler{placeOrderService: placeOrderService}
}

// RegisterRoutes registers checkout routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/place-order", h.Place)
}

// Place handles POST /api/place-order
func (h *OrderHandler) Place(c *gin.Context) {
	var req apporder.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrs := FieldErrors(err)
		message := "The given data was invalid."
		for field := range fieldErrs {
			if deliveryFields[field] {
				message = "Please fill in all required delivery details."
				break
			}
		}
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(message, fieldErrs))
		return
	}

	result, err := h.placeOrderService.Place(c.Request.Context(), &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.OrderPlacedResponse{
		Success: true,
		Message: "Order placed successfully.",
		OrderID: result.OrderID,
	})
}

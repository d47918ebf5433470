package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/foodcourt/storefront/internal/application/catalog"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// FoodHandler serves the admin food management endpoints
type FoodHandler struct {
	BaseHandler
	foodService *appcatalog.FoodService
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(foodService *appcatalog.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// RegisterRoutes registers food management routes
func (h *FoodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/food", h.List)
	rg.POST("/food", h.Create)
	rg.PUT("/food/:id", h.Update)
	rg.DELETE("/food/:id", h.Delete)
	rg.PATCH("/food/:id/toggle-status", h.ToggleStatus)
}

// List handles GET /api/food
func (h *FoodHandler) List(c *gin.Context) {
	foods, err := h.foodService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.NewDataResponse(foods))
}

// Create handles POST /api/food
func (h *FoodHandler) Create(c *gin.Context) {
	var req appcatalog.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, "The given data was invalid.", err)
		return
	}

	food, err := h.foodService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, food)
}

// Update handles PUT /api/food/:id
func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := h.foodID(c)
	if !ok {
		return
	}
	var req appcatalog.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, "The given data was invalid.", err)
		return
	}

	food, err := h.foodService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, food)
}

// Delete handles DELETE /api/food/:id
func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := h.foodID(c)
	if !ok {
		return
	}
	if err := h.foodService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Food deleted.")
}

// ToggleStatus handles PATCH /api/food/:id/toggle-status
func (h *FoodHandler) ToggleStatus(c *gin.Context) {
	id, ok := h.foodID(c)
	if !ok {
		return
	}
	food, err := h.foodService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, food)
}

// foodID parses the path parameter; a non-numeric id can never match a
// record, so it reads as not found
func (h *FoodHandler) foodID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Food not found."))
		return 0, false
	}
	return uint(id), true
}

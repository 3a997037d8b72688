package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// IngredientHandler handles ingredient registry HTTP requests
type IngredientHandler struct {
	ingredientService *service.IngredientService
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// Create handles registering an ingredient
func (h *IngredientHandler) Create(c *gin.Context) {
	var req request.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ingredient, err := h.ingredientService.CreateIngredient(c.Request.Context(), &service.CreateIngredientInput{
		Name:           req.Name,
		PurchaseUnit:   req.PurchaseUnit,
		UnitToKgFactor: req.UnitToKgFactor,
		MinimumStockKg: req.MinimumStockKg,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ingredient created successfully", ingredient)
}

// Get handles getting a single ingredient
func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient retrieved successfully", ingredient)
}

// List handles listing ingredients
func (h *IngredientHandler) List(c *gin.Context) {
	params := ParsePagination(c)
	search := c.Query("search")

	result, err := h.ingredientService.ListIngredients(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Ingredients retrieved successfully", result)
}

// Update handles updating an ingredient
func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	var req request.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ingredient, err := h.ingredientService.UpdateIngredient(c.Request.Context(), &service.UpdateIngredientInput{
		ID:             id,
		Name:           req.Name,
		PurchaseUnit:   req.PurchaseUnit,
		UnitToKgFactor: req.UnitToKgFactor,
		MinimumStockKg: req.MinimumStockKg,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredient updated successfully", ingredient)
}

// Delete handles deleting an ingredient. Ingredients referenced by formulas
// or purchases are rejected with a conflict.
func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	if err := h.ingredientService.DeleteIngredient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

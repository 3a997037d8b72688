package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// PurchaseHandler handles purchase intake HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles recording a purchase intake
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		response.BadRequest(c, "Invalid ingredient ID")
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	record, err := h.purchaseService.CreatePurchase(c.Request.Context(), &service.CreatePurchaseInput{
		IngredientID: ingredientID,
		Date:         date,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Supplier:     req.Supplier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded successfully", record)
}

// Get handles getting a single purchase record
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	record, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", record)
}

// List handles listing purchase records
func (h *PurchaseHandler) List(c *gin.Context) {
	startDate, endDate, ok := ParseDateRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	params := &repository.PurchaseFilterParams{
		Pagination: ParsePagination(c),
		StartDate:  startDate,
		EndDate:    endDate,
	}

	if value := c.Query("ingredient_id"); value != "" {
		ingredientID, err := uuid.Parse(value)
		if err != nil {
			response.BadRequest(c, "Invalid ingredient ID filter")
			return
		}
		params.IngredientID = &ingredientID
	}

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

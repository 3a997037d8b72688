package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense log HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateExpenseInput{
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		input.CategoryID = &categoryID
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// List handles listing expenses with optional category and date filters
func (h *ExpenseHandler) List(c *gin.Context) {
	startDate, endDate, ok := ParseDateRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	var categoryID *uuid.UUID
	if value := c.Query("category_id"); value != "" {
		parsed, err := uuid.Parse(value)
		if err != nil {
			response.BadRequest(c, "Invalid category ID filter")
			return
		}
		categoryID = &parsed
	}

	params := ParsePagination(c)
	result, err := h.expenseService.ListExpenses(c.Request.Context(), params, categoryID, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Get handles getting a single expense record
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Delete handles deleting an expense record
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateCategory handles creating an expense category
func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req request.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.expenseService.CreateCategory(c.Request.Context(), &service.CreateCategoryInput{
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// ListCategories handles listing expense categories
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// DeleteCategory handles deleting an expense category
func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.expenseService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

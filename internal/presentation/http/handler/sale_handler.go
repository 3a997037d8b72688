package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale and receivable HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateSaleInput{
		Date:          date,
		Customer:      req.Customer,
		Product:       req.Product,
		QuantitySold:  req.QuantitySold,
		UnitPrice:     req.UnitPrice,
		PaymentMethod: req.PaymentMethod,
	}

	if req.DueDate != nil {
		dueDate, err := ParseDate(*req.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
			return
		}
		input.DueDate = &dueDate
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles getting a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Settle handles marking a pending credit sale as paid
func (h *SaleHandler) Settle(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.SettleSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale settled successfully", sale)
}

// List handles listing sales with optional status and date filters
func (h *SaleHandler) List(c *gin.Context) {
	startDate, endDate, ok := ParseDateRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: ParsePagination(c),
		StartDate:  startDate,
		EndDate:    endDate,
	}

	switch c.Query("status") {
	case "pending":
		pending := enum.PaymentStatusPending
		params.Status = &pending
	case "paid":
		paid := enum.PaymentStatusPaid
		params.Status = &paid
	case "":
	default:
		response.BadRequest(c, "Invalid status filter, expected pending or paid")
		return
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// ListReceivables handles listing pending credit sales
func (h *SaleHandler) ListReceivables(c *gin.Context) {
	params := ParsePagination(c)
	overdueOnly := c.Query("overdue") == "true"

	result, err := h.saleService.ListReceivables(c.Request.Context(), params, overdueOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receivables retrieved successfully", result)
}

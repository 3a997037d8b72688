package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// StockHandler handles stock dashboard HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Overview handles the full stock dashboard
func (h *StockHandler) Overview(c *gin.Context) {
	overview, err := h.stockService.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock overview retrieved successfully", overview)
}

// LowStock handles listing ingredients below their minimum stock level
func (h *StockHandler) LowStock(c *gin.Context) {
	items, err := h.stockService.ListLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock ingredients retrieved successfully", items)
}

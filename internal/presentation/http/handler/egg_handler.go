package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// EggHandler handles egg production HTTP requests
type EggHandler struct {
	eggService *service.EggService
}

// NewEggHandler creates a new egg handler
func NewEggHandler(eggService *service.EggService) *EggHandler {
	return &EggHandler{eggService: eggService}
}

// Record handles logging a day's collection for a shed
func (h *EggHandler) Record(c *gin.Context) {
	var req request.RecordEggProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	shedID, err := uuid.Parse(req.ShedID)
	if err != nil {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	record, err := h.eggService.RecordProduction(c.Request.Context(), &service.RecordProductionInput{
		ShedID:     shedID,
		Date:       date,
		GoodEggs:   req.GoodEggs,
		BrokenEggs: req.BrokenEggs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Egg production recorded successfully", record)
}

// List handles listing egg production records
func (h *EggHandler) List(c *gin.Context) {
	startDate, endDate, ok := ParseDateRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	var shedID *uuid.UUID
	if value := c.Query("shed_id"); value != "" {
		parsed, err := uuid.Parse(value)
		if err != nil {
			response.BadRequest(c, "Invalid shed ID filter")
			return
		}
		shedID = &parsed
	}

	params := ParsePagination(c)
	result, err := h.eggService.ListProductions(c.Request.Context(), shedID, params, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Egg productions retrieved successfully", result)
}

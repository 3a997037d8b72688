package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// FeedHandler handles feed production and consumption HTTP requests
type FeedHandler struct {
	feedService *service.FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Produce handles recording a feed production run. Ingredient shortfalls
// come back as warnings, not errors.
func (h *FeedHandler) Produce(c *gin.Context) {
	var req request.ProduceFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	formulaID, err := uuid.Parse(req.FormulaID)
	if err != nil {
		response.BadRequest(c, "Invalid formula ID")
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	result, err := h.feedService.ProduceFeed(c.Request.Context(), &service.ProduceFeedInput{
		FormulaID:  formulaID,
		Date:       date,
		QuantityKg: req.QuantityKg,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithWarnings(c, 201, "Feed production recorded successfully", result.Record, result.Warnings)
}

// ListProductions handles listing feed production records
func (h *FeedHandler) ListProductions(c *gin.Context) {
	startDate, endDate, ok := ParseDateRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	params := ParsePagination(c)
	result, err := h.feedService.ListProductions(c.Request.Context(), params, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Feed productions retrieved successfully", result)
}

// RecordConsumption handles logging shed feed usage
func (h *FeedHandler) RecordConsumption(c *gin.Context) {
	var req request.RecordConsumptionRequest
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

	result, err := h.feedService.RecordConsumption(c.Request.Context(), &service.RecordConsumptionInput{
		ShedID:     shedID,
		Date:       date,
		QuantityKg: req.QuantityKg,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithWarnings(c, 201, "Feed consumption recorded successfully", result.Event, result.Warnings)
}

// ListConsumptions handles listing a shed's feed consumption events
func (h *FeedHandler) ListConsumptions(c *gin.Context) {
	shedID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	params := ParsePagination(c)
	result, err := h.feedService.ListConsumptions(c.Request.Context(), shedID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Feed consumptions retrieved successfully", result)
}

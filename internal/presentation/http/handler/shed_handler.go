package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// ShedHandler handles shed and husbandry HTTP requests
type ShedHandler struct {
	shedService *service.ShedService
}

// NewShedHandler creates a new shed handler
func NewShedHandler(shedService *service.ShedService) *ShedHandler {
	return &ShedHandler{shedService: shedService}
}

// Create handles registering a shed
func (h *ShedHandler) Create(c *gin.Context) {
	var req request.CreateShedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	shed, err := h.shedService.CreateShed(c.Request.Context(), &service.CreateShedInput{
		Name:       req.Name,
		BatchLabel: req.BatchLabel,
		BirdCount:  req.BirdCount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Shed created successfully", shed)
}

// Get handles getting a single shed
func (h *ShedHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	shed, err := h.shedService.GetShed(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shed retrieved successfully", shed)
}

// List handles listing sheds
func (h *ShedHandler) List(c *gin.Context) {
	params := ParsePagination(c)
	search := c.Query("search")

	result, err := h.shedService.ListSheds(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sheds retrieved successfully", result)
}

// Update handles updating a shed
func (h *ShedHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	var req request.UpdateShedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	shed, err := h.shedService.UpdateShed(c.Request.Context(), id, &service.UpdateShedInput{
		Name:       req.Name,
		BatchLabel: req.BatchLabel,
		BirdCount:  req.BirdCount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shed updated successfully", shed)
}

// Delete handles deleting a shed
func (h *ShedHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	if err := h.shedService.DeleteShed(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RecordMortality handles logging bird losses for a shed
func (h *ShedHandler) RecordMortality(c *gin.Context) {
	shedID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	var req request.RecordMortalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	event, err := h.shedService.RecordMortality(c.Request.Context(), &service.RecordMortalityInput{
		ShedID: shedID,
		Date:   date,
		Count:  req.Count,
		Cause:  req.Cause,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Mortality recorded successfully", event)
}

// ListMortalities handles listing a shed's mortality events
func (h *ShedHandler) ListMortalities(c *gin.Context) {
	shedID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	params := ParsePagination(c)
	result, err := h.shedService.ListMortalities(c.Request.Context(), shedID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Mortalities retrieved successfully", result)
}

// RecordHusbandry handles logging a care activity for a shed
func (h *ShedHandler) RecordHusbandry(c *gin.Context) {
	shedID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	var req request.RecordHusbandryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	event, err := h.shedService.RecordHusbandry(c.Request.Context(), &service.RecordHusbandryInput{
		ShedID:      shedID,
		Date:        date,
		Activity:    req.Activity,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Husbandry activity recorded successfully", event)
}

// ListHusbandry handles listing a shed's husbandry events
func (h *ShedHandler) ListHusbandry(c *gin.Context) {
	shedID, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid shed ID")
		return
	}

	params := ParsePagination(c)
	result, err := h.shedService.ListHusbandry(c.Request.Context(), shedID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Husbandry activities retrieved successfully", result)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// FormulaHandler handles feed formula HTTP requests
type FormulaHandler struct {
	formulaService *service.FormulaService
}

// NewFormulaHandler creates a new formula handler
func NewFormulaHandler(formulaService *service.FormulaService) *FormulaHandler {
	return &FormulaHandler{formulaService: formulaService}
}

func (h *FormulaHandler) bindSaveInput(c *gin.Context, id *uuid.UUID) (*service.SaveFormulaInput, bool) {
	var req request.SaveFormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return nil, false
	}

	input := &service.SaveFormulaInput{
		ID:        id,
		Name:      req.Name,
		BirdPhase: req.BirdPhase,
		Lines:     make([]service.FormulaLineInput, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		ingredientID, err := uuid.Parse(line.IngredientID)
		if err != nil {
			response.BadRequest(c, "Invalid ingredient ID in formula line")
			return nil, false
		}
		input.Lines = append(input.Lines, service.FormulaLineInput{
			IngredientID: ingredientID,
			QuantityKg:   line.QuantityKg,
		})
	}
	return input, true
}

// Create handles creating a formula
func (h *FormulaHandler) Create(c *gin.Context) {
	input, ok := h.bindSaveInput(c, nil)
	if !ok {
		return
	}

	formula, err := h.formulaService.SaveFormula(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Formula created successfully", formula)
}

// Update handles replacing a formula and its lines
func (h *FormulaHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid formula ID")
		return
	}

	input, ok := h.bindSaveInput(c, &id)
	if !ok {
		return
	}

	formula, err := h.formulaService.SaveFormula(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Formula updated successfully", formula)
}

// Get handles getting a single formula with its lines
func (h *FormulaHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid formula ID")
		return
	}

	formula, err := h.formulaService.GetFormula(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Formula retrieved successfully", formula)
}

// List handles listing formulas
func (h *FormulaHandler) List(c *gin.Context) {
	params := ParsePagination(c)
	search := c.Query("search")

	result, err := h.formulaService.ListFormulas(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Formulas retrieved successfully", result)
}

// Delete handles deleting a formula
func (h *FormulaHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid formula ID")
		return
	}

	if err := h.formulaService.DeleteFormula(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

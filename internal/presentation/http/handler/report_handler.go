package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// ReportHandler handles period report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Financial handles the period financial statement. Both start_date and
// end_date are required.
func (h *ReportHandler) Financial(c *gin.Context) {
	start, err := ParseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "start_date is required, expected YYYY-MM-DD")
		return
	}
	end, err := ParseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "end_date is required, expected YYYY-MM-DD")
		return
	}

	report, err := h.reportService.BuildFinancialReport(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financial report generated successfully", report)
}

// Production handles the per-shed production summary
func (h *ReportHandler) Production(c *gin.Context) {
	start, err := ParseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, "start_date is required, expected YYYY-MM-DD")
		return
	}
	end, err := ParseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, "end_date is required, expected YYYY-MM-DD")
		return
	}

	report, err := h.reportService.BuildProductionReport(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Production report generated successfully", report)
}

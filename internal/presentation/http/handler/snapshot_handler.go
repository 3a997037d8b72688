package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/internal/application/service"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/request"
	"github.com/granjatech/granja-api/internal/presentation/http/dto/response"
)

// resetConfirmPhrase must be sent verbatim to wipe the store
const resetConfirmPhrase = "RESET ALL DATA"

// SnapshotHandler handles backup, restore and reset HTTP requests
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Export handles a full-store backup download
func (h *SnapshotHandler) Export(c *gin.Context) {
	result, err := h.snapshotService.Export(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="granja-backup.json"`)
	c.JSON(200, result)
}

// Import handles restoring a backup. Collections present in the payload are
// replaced wholesale; absent ones are untouched.
func (h *SnapshotHandler) Import(c *gin.Context) {
	var payload struct {
		Data map[string]interface{} `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.snapshotService.Import(c.Request.Context(), payload.Data); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Snapshot imported successfully", nil)
}

// Reset handles wiping all application data. Requires the confirmation
// phrase in the body.
func (h *SnapshotHandler) Reset(c *gin.Context) {
	var req request.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.Confirm != resetConfirmPhrase {
		response.BadRequest(c, `Confirmation phrase mismatch; send "RESET ALL DATA" to proceed`)
		return
	}

	if err := h.snapshotService.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "All application data reset", nil)
}

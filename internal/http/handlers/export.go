package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink-app/devlink-backend/internal/http/response"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
	"github.com/devlink-app/devlink-backend/internal/services"
)

type ExportHandler struct {
	log           *logger.Logger
	exportService services.ExportService
}

func NewExportHandler(baseLog *logger.Logger, exportService services.ExportService) *ExportHandler {
	return &ExportHandler{
		log:           baseLog.With("handler", "ExportHandler"),
		exportService: exportService,
	}
}

// POST /api/portfolios/:id/export
func (eh *ExportHandler) Export(c *gin.Context) {
	id, ok := portfolioID(c)
	if !ok {
		return
	}
	var req struct {
		Format string `json:"format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := eh.exportService.Export(c.Request.Context(), id, req.Format)
	if err != nil {
		respondServiceError(c, eh.log, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

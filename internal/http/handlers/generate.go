package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink-app/devlink-backend/internal/http/response"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
	"github.com/devlink-app/devlink-backend/internal/services"
)

type GenerateHandler struct {
	log              *logger.Logger
	generatorService services.GeneratorService
}

func NewGenerateHandler(baseLog *logger.Logger, generatorService services.GeneratorService) *GenerateHandler {
	return &GenerateHandler{
		log:              baseLog.With("handler", "GenerateHandler"),
		generatorService: generatorService,
	}
}

// POST /api/generate
func (gh *GenerateHandler) Generate(c *gin.Context) {
	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	content := gh.generatorService.Generate(req)
	response.RespondOK(c, gin.H{"content": content})
}

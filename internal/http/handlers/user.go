package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/devlink-app/devlink-backend/internal/http/response"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
	"github.com/devlink-app/devlink-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(baseLog *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         baseLog.With("handler", "UserHandler"),
		userService: userService,
	}
}

// GET /api/me
func (uh *UserHandler) GetMe(c *gin.Context) {
	u, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		respondServiceError(c, uh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"user": u})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink-app/devlink-backend/internal/http/response"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

// respondServiceError maps service errors onto the wire contract. Unexpected
// failures are logged with their cause but leave the response body generic.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
	case errors.Is(err, errs.ErrUnauthorized):
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("unauthorized"))
	case errors.Is(err, errs.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("not found"))
	case errors.Is(err, errs.ErrConflict):
		response.RespondError(c, http.StatusConflict, "conflict", err)
	default:
		if log != nil {
			log.Error("Request failed", "path", c.FullPath(), "error", err)
		}
		response.RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("internal error"))
	}
}

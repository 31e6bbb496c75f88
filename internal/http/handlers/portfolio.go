package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/http/response"
	"github.com/devlink-app/devlink-backend/internal/platform/ctxutil"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
	"github.com/devlink-app/devlink-backend/internal/services"
)

type PortfolioHandler struct {
	log              *logger.Logger
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(baseLog *logger.Logger, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		log:              baseLog.With("handler", "PortfolioHandler"),
		portfolioService: portfolioService,
	}
}

// POST /api/portfolios
func (ph *PortfolioHandler) Create(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Template string `json:"template"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	p, err := ph.portfolioService.Create(c.Request.Context(), currentUserID(c), req.Title, req.Template)
	if err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondCreated(c, gin.H{"portfolio": p})
}

// GET /api/portfolios
func (ph *PortfolioHandler) List(c *gin.Context) {
	list, err := ph.portfolioService.ListOwned(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondOK(c, gin.H{"portfolios": list})
}

// GET /api/portfolios/:id
func (ph *PortfolioHandler) Get(c *gin.Context) {
	id, ok := portfolioID(c)
	if !ok {
		return
	}
	p, err := ph.portfolioService.GetOwned(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondOK(c, gin.H{"portfolio": p})
}

// PUT /api/portfolios/:id
func (ph *PortfolioHandler) Update(c *gin.Context) {
	id, ok := portfolioID(c)
	if !ok {
		return
	}
	var payload types.ReplacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	p, err := ph.portfolioService.Replace(c.Request.Context(), id, currentUserID(c), &payload)
	if err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondOK(c, gin.H{"portfolio": p})
}

// DELETE /api/portfolios/:id
func (ph *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := portfolioID(c)
	if !ok {
		return
	}
	if err := ph.portfolioService.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Portfolio deleted successfully"})
}

// POST /api/portfolios/:id/publish
func (ph *PortfolioHandler) Publish(c *gin.Context) {
	id, ok := portfolioID(c)
	if !ok {
		return
	}
	p, err := ph.portfolioService.Publish(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondOK(c, gin.H{"portfolio": p})
}

// GET /api/portfolios/public/:slug
func (ph *PortfolioHandler) GetPublic(c *gin.Context) {
	p, err := ph.portfolioService.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, ph.log, err)
		return
	}
	response.RespondOK(c, gin.H{"portfolio": p})
}

func currentUserID(c *gin.Context) uuid.UUID {
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		return rd.UserID
	}
	return uuid.Nil
}

// portfolioID parses the :id param. A malformed id is indistinguishable from
// a missing portfolio on the wire.
func portfolioID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "not_found", errors.New("not found"))
		return uuid.Nil, false
	}
	return id, true
}

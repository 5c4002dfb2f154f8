package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onyxlab/onyx/internal/server/http/dto"
)

// SystemHandler serves the health probe and the sample protected endpoint.
type SystemHandler struct {
	facade SystemFacade
	logger *slog.Logger
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade SystemFacade, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{facade: facade, logger: logger}
}

// Health handles GET / and probes database connectivity.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Protected handles GET /protected and echoes the verified identity.
func (h *SystemHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProtectedResponse{
		Message: "authorized",
		User: dto.ClaimsResponse{
			UserID: CurrentUserID(c),
			Email:  CurrentUserEmail(c),
		},
	})
}

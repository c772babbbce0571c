package api

import (
	"net/http"

	"rsvp-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

func NewHealthHandler(r gin.IRoutes, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{
		healthUC: healthUC,
	}

	r.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Verifies the Notion settings and that the guest database can be read.
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.HealthStatus
// @Failure      503  {object}  domain.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

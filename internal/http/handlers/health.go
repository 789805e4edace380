package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/reelcraft-backend/internal/http/response"
)

type HealthHandler struct {
	service   string
	endpoints []string
}

func NewHealthHandler(service string, endpoints []string) *HealthHandler {
	return &HealthHandler{service: service, endpoints: endpoints}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Index describes the service and its routes.
func (h *HealthHandler) Index(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"service":   h.service,
		"endpoints": h.endpoints,
	})
}

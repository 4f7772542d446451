package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/service"
)

type StatusHandler struct {
	service *service.StatusService
	logger  *zap.Logger
}

func NewStatusHandler(svc *service.StatusService, logger *zap.Logger) *StatusHandler {
	registerValidators()
	return &StatusHandler{service: svc, logger: logger}
}

func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	var in models.StatusCheckCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, locBody, err)
		return
	}

	check, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}

// Root responde el saludo fijo usado como liveness
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello World"})
}

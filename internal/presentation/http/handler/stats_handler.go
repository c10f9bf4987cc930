package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mamisoa/girofle-api/internal/application/service"
	"github.com/mamisoa/girofle-api/internal/domain/enum"
	"github.com/mamisoa/girofle-api/internal/presentation/http/dto/response"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetUndeliveredQuantities handles the undelivered stock overview
func (h *StatsHandler) GetUndeliveredQuantities(c *gin.Context) {
	result, err := h.statsService.GetUndeliveredQuantities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Undelivered quantities retrieved successfully", result)
}

// GetUndeliveredDetails handles the per-type undelivered drill-down
func (h *StatsHandler) GetUndeliveredDetails(c *gin.Context) {
	productType := enum.ProductType(c.Param("type"))

	result, err := h.statsService.GetUndeliveredDetails(c.Request.Context(), productType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Undelivered details retrieved successfully", result)
}

// GetSummary handles the complete stock and lifecycle overview
func (h *StatsHandler) GetSummary(c *gin.Context) {
	result, err := h.statsService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statistics retrieved successfully", result)
}

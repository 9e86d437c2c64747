package handler

import (
	"net/http"

	"cantina/internal/dto"
	"cantina/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Stats GET /v1/reports/stats
func (h *ReportsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Insights GET /v1/reports/insights — narrated summary; the narrator itself
// never fails, so only stat aggregation can error here.
func (h *ReportsHandler) Insights(c *gin.Context) {
	insights, err := h.svc.Insights(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}

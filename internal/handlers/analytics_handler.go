package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context(), currentUserID(c), time.Now())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to build analytics", err)
		return
	}
	utils.SuccessResponse(c, "Analytics summary", summary)
}

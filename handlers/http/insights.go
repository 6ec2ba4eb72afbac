package httpHandler

import (
	"net/http"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/services"
	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	service *services.InsightsService
}

func NewInsightsHandler(service *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// GetInsights handles GET /api/v1/users/:id/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	insights, err := h.service.ForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insights"})
		return
	}
	if insights == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": insights})
}

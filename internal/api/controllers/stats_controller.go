package controllers

import (
	"github.com/gin-gonic/gin"

	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Fetch invoice counts, outstanding and paid amounts, and recent reminder activity. Fields degrade to zero when a read fails.
// @Tags Stats
// @Produce json
// @Success 200 {object} response_models.DashboardStats
// @Security BearerAuth
// @Router /stats/dashboard [get]
func (s *StatsController) GetDashboardStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats := s.statsService.GetDashboardStats(c.Request.Context(), userID)
	utils.RespondSuccess(c, stats, "Dashboard stats fetched successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abelaguiar/api-hydro-time/middlewares"
	"github.com/abelaguiar/api-hydro-time/services"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

func (h *StatsController) Overview(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	overview, err := h.Svc.Overview(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

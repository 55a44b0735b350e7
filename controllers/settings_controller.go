package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abelaguiar/api-hydro-time/middlewares"
	"github.com/abelaguiar/api-hydro-time/services"
)

type SettingsController struct {
	Svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: svc}
}

func (h *SettingsController) Get(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	settings, err := h.Svc.Get(c.Request.Context(), userID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// SettingsInput is a partial update; every field is optional and the
// positive-integer fields are validated only when present.
type SettingsInput struct {
	DailyGoalMl             *int    `json:"dailyGoalMl" binding:"omitempty,gt=0"`
	ReminderIntervalMinutes *int    `json:"reminderIntervalMinutes" binding:"omitempty,gt=0"`
	NotificationsEnabled    *bool   `json:"notificationsEnabled"`
	Language                *string `json:"language"`
	Theme                   *string `json:"theme"`
}

func (h *SettingsController) Update(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Svc.Update(c.Request.Context(), userID, services.SettingsUpdate{
		DailyGoalMl:             input.DailyGoalMl,
		ReminderIntervalMinutes: input.ReminderIntervalMinutes,
		NotificationsEnabled:    input.NotificationsEnabled,
		Language:                input.Language,
		Theme:                   input.Theme,
	})
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}

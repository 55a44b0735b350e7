package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abelaguiar/api-hydro-time/middlewares"
	"github.com/abelaguiar/api-hydro-time/models"
	"github.com/abelaguiar/api-hydro-time/services"
)

type IntakeController struct {
	Svc *services.IntakeService
}

func NewIntakeController(svc *services.IntakeService) *IntakeController {
	return &IntakeController{Svc: svc}
}

type CreateIntakeInput struct {
	AmountMl        int            `json:"amountMl" binding:"required,gt=0"`
	Timestamp       *models.Millis `json:"timestamp" binding:"required"`
	DurationSeconds int            `json:"durationSeconds"`
}

func (h *IntakeController) Create(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	var input CreateIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.Create(c.Request.Context(), userID, input.AmountMl, *input.Timestamp, input.DurationSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create intake log"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Intake log created successfully",
		"intakeLog": log,
	})
}

func (h *IntakeController) List(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	var f services.ListFilter
	if v := c.Query("startDate"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			start := models.Millis(ms)
			f.StartDate = &start
		}
	}
	if v := c.Query("endDate"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			end := models.Millis(ms)
			f.EndDate = &end
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Offset = n
		}
	}

	logs, total, applied, err := h.Svc.List(c.Request.Context(), userID, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch intake logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intakeLogs": logs,
		"total":      total,
		"limit":      applied.Limit,
		"offset":     applied.Offset,
	})
}

func (h *IntakeController) Delete(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)
	id := c.Param("id")

	err := h.Svc.Delete(c.Request.Context(), userID, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Intake log not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this intake log"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete intake log"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Intake log deleted successfully"})
	}
}

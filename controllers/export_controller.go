package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abelaguiar/api-hydro-time/middlewares"
	"github.com/abelaguiar/api-hydro-time/services"
)

type ExportController struct {
	Svc *services.ExportService
}

func NewExportController(svc *services.ExportService) *ExportController {
	return &ExportController{Svc: svc}
}

func (h *ExportController) JSON(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	data, err := h.Svc.UserData(c.Request.Context(), userID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *ExportController) CSV(c *gin.Context) {
	userID := c.GetString(middlewares.CtxUserID)

	// Buffer the whole document so a storage fault still yields a clean 500
	// instead of a truncated attachment.
	var buf bytes.Buffer
	if err := h.Svc.WriteCSV(c.Request.Context(), userID, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="hydro-time-export.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

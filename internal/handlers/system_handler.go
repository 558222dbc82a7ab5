package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bodega-pos/internal/utils"
)

// GetSystemStatus reports the terminal's hardware-derived ID and storage
// health. The frontend shows this on the support screen.
func (h *Handler) GetSystemStatus(c *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"terminal_id": utils.GetTerminalID(),
		"database":    dbStatus,
	})
}

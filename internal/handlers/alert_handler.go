package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListAlerts returns all open low-stock alerts for the dashboard.
func (h *Handler) ListAlerts(c *gin.Context) {
	alerts, err := h.Alerts.ListUnacknowledged(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// AcknowledgeAlert marks an alert as seen. Acknowledging twice is harmless.
func (h *Handler) AcknowledgeAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alert ID"})
		return
	}

	alert, err := h.Alerts.Acknowledge(h.DB, uint(id), actorID(c))
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

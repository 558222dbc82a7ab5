// Package handlers exposes the POS engine over gin HTTP routes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bodega-pos/internal/auth"
	"bodega-pos/internal/inventory"
	"bodega-pos/internal/pos"
)

// Handler bundles the services the HTTP layer depends on.
type Handler struct {
	DB          *gorm.DB
	Tokens      *auth.Manager
	Coordinator *pos.Coordinator
	Ledger      *inventory.Ledger
	Alerts      *inventory.Monitor
}

func New(db *gorm.DB, tokens *auth.Manager, coordinator *pos.Coordinator, ledger *inventory.Ledger, alerts *inventory.Monitor) *Handler {
	return &Handler{
		DB:          db,
		Tokens:      tokens,
		Coordinator: coordinator,
		Ledger:      ledger,
		Alerts:      alerts,
	}
}

// actorID returns the authenticated user's ID, set by the auth middleware.
func actorID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// writeEngineError maps typed engine failures onto HTTP statuses so the UI
// can render the specific rejection reason.
func writeEngineError(c *gin.Context, err error) {
	var stockErr *inventory.InsufficientStockError
	var notFoundErr *inventory.ProductNotFoundError

	switch {
	case errors.Is(err, pos.ErrEmptyCart),
		errors.Is(err, pos.ErrNegativeTotal),
		errors.Is(err, pos.ErrInsufficientPayment),
		errors.Is(err, pos.ErrInvalidPayment),
		errors.Is(err, pos.ErrInvalidCustomer),
		errors.Is(err, inventory.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":      stockErr.Error(),
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.Is(err, pos.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent checkout conflict, please retry"})
	case errors.Is(err, inventory.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure, please retry"})
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bodega-pos/internal/pos"
)

// CheckoutRequest is what the POS frontend sends us. Totals computed by the
// UI are not part of the payload; the engine recomputes everything from
// catalog prices.
type CheckoutRequest struct {
	CustomerID    *uint             `json:"customer_id"`
	Items         []pos.LineRequest `json:"items"`
	Discount      pos.Discount      `json:"discount"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	AmountPaid    *decimal.Decimal  `json:"amount_paid"`
}

// ProcessSale commits a cart as one atomic sale and returns the persisted
// record for receipt rendering.
func (h *Handler) ProcessSale(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sale, err := h.Coordinator.CommitSale(c.Request.Context(), pos.CommitSaleRequest{
		CashierID:     actorID(c),
		CustomerID:    req.CustomerID,
		Lines:         req.Items,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		AmountPaid:    req.AmountPaid,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

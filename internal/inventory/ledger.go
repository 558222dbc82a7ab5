// Package inventory owns authoritative stock counts and the low-stock alerts
// derived from stock transitions.
package inventory

import (
	"errors"

	"gorm.io/gorm"

	"bodega-pos/internal/audit"
	"bodega-pos/internal/models"
)

// Ledger is the sole writer of Product.StockQuantity. Every successful
// mutation is audited and reported to the alert monitor inside the same
// transaction.
type Ledger struct {
	Alerts *Monitor
}

func NewLedger(alerts *Monitor) *Ledger {
	return &Ledger{Alerts: alerts}
}

// ReserveAndDecrement atomically checks and decrements a product's stock.
// The guard lives in the UPDATE itself (stock_quantity >= quantity), so two
// concurrent commits contending for the last unit resolve to exactly one
// success; the loser sees zero affected rows and gets InsufficientStockError.
// Returns the post-decrement stock level.
func (l *Ledger) ReserveAndDecrement(tx *gorm.DB, actorID, productID uint, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	var before models.Product
	if err := tx.First(&before, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &ProductNotFoundError{ProductID: productID}
		}
		return 0, err
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, &InsufficientStockError{
			ProductID:   before.ID,
			ProductName: before.Name,
			Requested:   quantity,
			Available:   before.StockQuantity,
		}
	}

	return l.finishMutation(tx, actorID, &before)
}

// Restock increases a product's stock by quantity. An explicit catalog
// management action, not part of the sale path, but it goes through the same
// audit and alert discipline.
func (l *Ledger) Restock(tx *gorm.DB, actorID, productID uint, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	var before models.Product
	if err := tx.First(&before, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &ProductNotFoundError{ProductID: productID}
		}
		return 0, err
	}

	res := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if res.Error != nil {
		return 0, res.Error
	}

	return l.finishMutation(tx, actorID, &before)
}

// finishMutation reloads the product, audits the stock change and notifies
// the alert monitor. Runs inside the caller's transaction.
func (l *Ledger) finishMutation(tx *gorm.DB, actorID uint, before *models.Product) (int, error) {
	var after models.Product
	if err := tx.First(&after, before.ID).Error; err != nil {
		return 0, err
	}

	if err := audit.Record(tx, actorID, audit.ActionUpdate, audit.EntityProduct, after.ID, before, &after); err != nil {
		return 0, err
	}
	if err := l.Alerts.StockChanged(tx, &after); err != nil {
		return 0, err
	}
	return after.StockQuantity, nil
}

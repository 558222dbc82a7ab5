package inventory

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"bodega-pos/internal/models"
)

// ErrAlertNotFound is returned when acknowledging an unknown alert ID.
var ErrAlertNotFound = errors.New("low-stock alert not found")

// Monitor derives low-stock alerts from stock transitions reported by the
// ledger. At most one unacknowledged alert exists per product.
type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// StockChanged reconciles the product's alert state with its new stock level.
// At or below threshold: create an alert, or refresh the current_stock of the
// open one. Above threshold: resolve any open alert so stale alerts do not
// outlive a restock. Acknowledged alerts are kept as history.
func (m *Monitor) StockChanged(tx *gorm.DB, p *models.Product) error {
	if p.StockQuantity <= p.LowStockThreshold {
		var alert models.LowStockAlert
		err := tx.Where("product_id = ? AND is_acknowledged = ?", p.ID, false).First(&alert).Error
		switch {
		case err == nil:
			alert.CurrentStock = p.StockQuantity
			alert.Threshold = p.LowStockThreshold
			return tx.Save(&alert).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.LowStockAlert{
				ProductID:    p.ID,
				CurrentStock: p.StockQuantity,
				Threshold:    p.LowStockThreshold,
			}).Error
		default:
			return err
		}
	}

	return tx.Where("product_id = ? AND is_acknowledged = ?", p.ID, false).
		Delete(&models.LowStockAlert{}).Error
}

// Acknowledge marks an alert as seen by actorID. Acknowledging an already
// acknowledged alert is a no-op, not an error.
func (m *Monitor) Acknowledge(db *gorm.DB, alertID, actorID uint) (*models.LowStockAlert, error) {
	var alert models.LowStockAlert
	if err := db.Preload("Product").First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}

	if alert.IsAcknowledged {
		return &alert, nil
	}

	now := time.Now()
	alert.IsAcknowledged = true
	alert.AcknowledgedBy = &actorID
	alert.AcknowledgedAt = &now
	if err := db.Save(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// ListUnacknowledged returns all open alerts, newest first, with product
// details for display.
func (m *Monitor) ListUnacknowledged(db *gorm.DB) ([]models.LowStockAlert, error) {
	var alerts []models.LowStockAlert
	err := db.Preload("Product").
		Where("is_acknowledged = ?", false).
		Order("updated_at desc").
		Find(&alerts).Error
	return alerts, err
}

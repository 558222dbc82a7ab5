package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodega-pos/internal/models"
)

func TestStockChangedCreatesAndRefreshesAlert(t *testing.T) {
	db := newTestDB(t)
	monitor := NewMonitor()
	product := seedProduct(t, db, 9, 10)

	require.NoError(t, monitor.StockChanged(db, product))

	var alert models.LowStockAlert
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&alert).Error)
	assert.Equal(t, 9, alert.CurrentStock)
	assert.False(t, alert.IsAcknowledged)

	// A further drop refreshes the open alert instead of creating another
	product.StockQuantity = 4
	require.NoError(t, monitor.StockChanged(db, product))

	var count int64
	require.NoError(t, db.Model(&models.LowStockAlert{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, db.Where("product_id = ?", product.ID).First(&alert).Error)
	assert.Equal(t, 4, alert.CurrentStock)
}

func TestStockChangedAboveThresholdResolvesOpenAlert(t *testing.T) {
	db := newTestDB(t)
	monitor := NewMonitor()
	product := seedProduct(t, db, 9, 10)

	require.NoError(t, monitor.StockChanged(db, product))

	product.StockQuantity = 25
	require.NoError(t, monitor.StockChanged(db, product))

	var count int64
	require.NoError(t, db.Model(&models.LowStockAlert{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStockChangedKeepsAcknowledgedAlertsAsHistory(t *testing.T) {
	db := newTestDB(t)
	monitor := NewMonitor()
	product := seedProduct(t, db, 9, 10)

	require.NoError(t, monitor.StockChanged(db, product))

	var alert models.LowStockAlert
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&alert).Error)
	_, err := monitor.Acknowledge(db, alert.ID, 7)
	require.NoError(t, err)

	// Rising above threshold must not erase the acknowledged record
	product.StockQuantity = 25
	require.NoError(t, monitor.StockChanged(db, product))

	var count int64
	require.NoError(t, db.Model(&models.LowStockAlert{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	monitor := NewMonitor()
	product := seedProduct(t, db, 2, 10)
	require.NoError(t, monitor.StockChanged(db, product))

	var alert models.LowStockAlert
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&alert).Error)

	first, err := monitor.Acknowledge(db, alert.ID, 7)
	require.NoError(t, err)
	require.True(t, first.IsAcknowledged)
	require.NotNil(t, first.AcknowledgedBy)
	assert.Equal(t, uint(7), *first.AcknowledgedBy)
	require.NotNil(t, first.AcknowledgedAt)

	// Second acknowledge is a no-op, not an error, and keeps the original actor
	second, err := monitor.Acknowledge(db, alert.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, uint(7), *second.AcknowledgedBy)
	assert.Equal(t, first.AcknowledgedAt.Unix(), second.AcknowledgedAt.Unix())
}

func TestAcknowledgeUnknownAlert(t *testing.T) {
	db := newTestDB(t)
	monitor := NewMonitor()

	_, err := monitor.Acknowledge(db, 555, 1)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestListUnacknowledgedExcludesAcknowledged(t *testing.T) {
	db := newTestDB(t)
	monitor := NewMonitor()

	low := seedProduct(t, db, 1, 10)
	require.NoError(t, monitor.StockChanged(db, low))

	other := &models.Product{Name: "Oil 1L", SKU: "OIL-1", StockQuantity: 0, LowStockThreshold: 3, IsActive: true}
	require.NoError(t, db.Create(other).Error)
	require.NoError(t, monitor.StockChanged(db, other))

	open, err := monitor.ListUnacknowledged(db)
	require.NoError(t, err)
	require.Len(t, open, 2)

	_, err = monitor.Acknowledge(db, open[0].ID, 1)
	require.NoError(t, err)

	open, err = monitor.ListUnacknowledged(db)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

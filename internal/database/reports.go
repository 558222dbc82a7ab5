package database

import (
	"time"

	"gorm.io/gorm"

	"bodega-pos/internal/models"
)

// SalesReportResult summarizes revenue over a date range.
type SalesReportResult struct {
	TotalRevenue float64
	TotalCount   int64
}

// GetSalesReport calculates sales within a specific date range.
func GetSalesReport(db *gorm.DB, start, end time.Time) (*SalesReportResult, error) {
	var result SalesReportResult

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := db.Model(&models.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&result.TotalCount).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// TopSellingRow is one product in the best-sellers ranking.
type TopSellingRow struct {
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// GetTopSelling ranks products by units sold.
func GetTopSelling(db *gorm.DB, limit int) ([]TopSellingRow, error) {
	var rows []TopSellingRow
	err := db.Table("sale_items").
		Select("products.name as product_name, SUM(sale_items.quantity) as sold, SUM(sale_items.total_price) as revenue").
		Joins("JOIN products ON sale_items.product_id = products.id").
		Group("products.name").
		Order("sold desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bodega-pos/internal/database"
	"bodega-pos/internal/models"
)

// ReportData is the manager dashboard payload.
type ReportData struct {
	TotalRevenue float64                  `json:"total_revenue"`
	TotalOrders  int64                    `json:"total_orders"`
	TopSelling   []database.TopSellingRow `json:"top_selling"`
	RecentSales  []models.Sale            `json:"recent_sales"`
}

// GetSalesReport aggregates revenue, order count, best sellers and the most
// recent transactions. Optional ?start / ?end (RFC 3339 dates) bound the
// revenue window; default is all time.
func (h *Handler) GetSalesReport(c *gin.Context) {
	start := time.Time{}
	end := time.Now()
	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		start = parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		end = parsed.Add(24 * time.Hour)
	}

	var data ReportData

	summary, err := database.GetSalesReport(h.DB, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate revenue"})
		return
	}
	data.TotalRevenue = summary.TotalRevenue
	data.TotalOrders = summary.TotalCount

	data.TopSelling, err = database.GetTopSelling(h.DB, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling items"})
		return
	}

	err = h.DB.Preload("Items.Product").Order("created_at desc").Limit(10).Find(&data.RecentSales).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent sales"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// ValuationItem represents a single row in the valuation table
type ValuationItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// CategoryGroup represents one category's slice of the inventory value
type CategoryGroup struct {
	CategoryName string          `json:"category_name"`
	Items        []ValuationItem `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// ValuationResponse is the final payload for the valuation report
type ValuationResponse struct {
	Categories []CategoryGroup `json:"categories"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// GetStockValuation calculates the total monetary value of all physical
// inventory, grouped by category.
func (h *Handler) GetStockValuation(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	grandTotal := decimal.Zero
	groupedMap := make(map[string]*CategoryGroup)

	for _, p := range products {
		catName := p.Category
		if catName == "" {
			catName = "Uncategorized"
		}

		if _, exists := groupedMap[catName]; !exists {
			groupedMap[catName] = &CategoryGroup{
				CategoryName: catName,
				Items:        []ValuationItem{},
				Subtotal:     decimal.Zero,
			}
		}

		itemTotal := p.CostPrice.Mul(decimal.NewFromInt(int64(p.StockQuantity)))

		groupedMap[catName].Items = append(groupedMap[catName].Items, ValuationItem{
			Name:      p.Name,
			Quantity:  p.StockQuantity,
			CostPrice: p.CostPrice,
			TotalCost: itemTotal,
		})
		groupedMap[catName].Subtotal = groupedMap[catName].Subtotal.Add(itemTotal)
		grandTotal = grandTotal.Add(itemTotal)
	}

	response := ValuationResponse{GrandTotal: grandTotal}
	for _, group := range groupedMap {
		response.Categories = append(response.Categories, *group)
	}

	c.JSON(http.StatusOK, response)
}

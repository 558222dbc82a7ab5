package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bodega-pos/internal/audit"
	"bodega-pos/internal/models"
)

// GetProducts lists the catalog that feeds the cart. By default only active
// products are returned; pass ?active=all to include retired ones.
func (h *Handler) GetProducts(c *gin.Context) {
	query := h.DB.Model(&models.Product{})

	if c.Query("active") != "all" {
		query = query.Where("is_active = ?", true)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR sku LIKE ? OR barcode = ?", like, like, q)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("name").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// ScanProduct looks a product up by barcode for the scanner flow.
func (h *Handler) ScanProduct(c *gin.Context) {
	var product models.Product
	err := h.DB.Where("barcode = ? AND is_active = ?", c.Param("barcode"), true).First(&product).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ProductInput covers the fields catalog management may set. Stock is
// deliberately absent: only the stock ledger writes stock_quantity.
type ProductInput struct {
	Name              string          `json:"name" binding:"required"`
	SKU               string          `json:"sku" binding:"required"`
	Barcode           string          `json:"barcode"`
	Category          string          `json:"category"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	InitialStock      int             `json:"initial_stock"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	IsActive          *bool           `json:"is_active"`
	ImageURL          string          `json:"image_url"`
}

// AddProduct creates a catalog entry and audits it.
func (h *Handler) AddProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if input.CostPrice.LessThan(decimal.Zero) || input.SellingPrice.LessThan(decimal.Zero) ||
		input.InitialStock < 0 || input.LowStockThreshold < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prices, stock and threshold must be non-negative"})
		return
	}

	product := models.Product{
		Name:              input.Name,
		SKU:               input.SKU,
		Barcode:           input.Barcode,
		Category:          input.Category,
		CostPrice:         input.CostPrice,
		SellingPrice:      input.SellingPrice,
		StockQuantity:     input.InitialStock,
		LowStockThreshold: input.LowStockThreshold,
		IsActive:          true,
		ImageURL:          input.ImageURL,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return audit.Record(tx, actorID(c), audit.ActionCreate, audit.EntityProduct, product.ID, nil, &product)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A product with this SKU already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct edits catalog fields. Stock changes go through the ledger
// (RestockProduct / checkout), never through this path.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	before := product

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if input.CostPrice.LessThan(decimal.Zero) || input.SellingPrice.LessThan(decimal.Zero) || input.LowStockThreshold < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prices and threshold must be non-negative"})
		return
	}

	product.Name = input.Name
	product.SKU = input.SKU
	product.Barcode = input.Barcode
	product.Category = input.Category
	product.CostPrice = input.CostPrice
	product.SellingPrice = input.SellingPrice
	product.LowStockThreshold = input.LowStockThreshold
	product.ImageURL = input.ImageURL
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		return audit.Record(tx, actorID(c), audit.ActionUpdate, audit.EntityProduct, product.ID, &before, &product)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog entry. Products referenced by past sales
// are protected by the foreign key; retire them with is_active instead.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Product{}, id).Error; err != nil {
			return err
		}
		return audit.Record(tx, actorID(c), audit.ActionDelete, audit.EntityProduct, product.ID, &product, nil)
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete product. It might be linked to past sales."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// RestockProduct increases stock through the ledger so the mutation is
// audited and the alert state is reconciled.
func (h *Handler) RestockProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var newStock int
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		newStock, txErr = h.Ledger.Restock(tx, actorID(c), uint(id), req.Quantity)
		return txErr
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product_id": id, "stock_quantity": newStock})
}

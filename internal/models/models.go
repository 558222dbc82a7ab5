package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User - The staff member operating the terminal
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'admin', 'manager', 'cashier'
	CreatedAt    time.Time `json:"created_at"`
}

// Customer - Optional association on a sale; independent lifecycle
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120" json:"name"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Email     string    `gorm:"size:120" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Product - The inventory. StockQuantity is written only by the stock ledger.
type Product struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"size:120" json:"name"`
	SKU               string          `gorm:"uniqueIndex;size:60" json:"sku"`
	Barcode           string          `gorm:"size:60" json:"barcode"`
	Category          string          `gorm:"size:60" json:"category"`
	CostPrice         decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_price"`
	SellingPrice      decimal.Decimal `gorm:"type:decimal(10,2)" json:"selling_price"`
	StockQuantity     int             `json:"stock_quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	IsActive          bool            `gorm:"default:true" json:"is_active"`
	ImageURL          string          `json:"image_url"`
}

// Sale - The transaction header. Immutable once committed.
type Sale struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	SaleNumber     string          `gorm:"uniqueIndex;size:20" json:"sale_number"`
	CustomerID     *uint           `json:"customer_id"`
	CashierID      uint            `json:"cashier_id"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	DiscountType   string          `gorm:"size:12;default:none" json:"discount_type"` // 'none', 'flat', 'percentage'
	DiscountValue  decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_value"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	PaymentMethod  string          `gorm:"size:20" json:"payment_method"` // 'cash', 'card', 'orange_money', 'mtn_money', 'bank'
	AmountPaid     decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount_paid"`
	ChangeDue      decimal.Decimal `gorm:"type:decimal(10,2)" json:"change_due"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
}

// SaleItem - One line of a sale, price snapshotted at commit time
type SaleItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	SaleID     uint            `json:"sale_id"`
	ProductID  uint            `json:"product_id"`
	Product    Product         `json:"product"` // Preload product details for the receipt
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
}

// LowStockAlert - Derived from stock transitions; at most one unacknowledged
// alert per product at any time.
type LowStockAlert struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ProductID      uint       `gorm:"index" json:"product_id"`
	Product        Product    `json:"product"`
	CurrentStock   int        `json:"current_stock"`
	Threshold      int        `json:"threshold"`
	IsAcknowledged bool       `gorm:"default:false" json:"is_acknowledged"`
	AcknowledgedBy *uint      `json:"acknowledged_by"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AuditLog - Append-only record of one mutation. Never updated or deleted.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActorID    uint      `json:"actor_id"`
	Action     string    `gorm:"size:10" json:"action"` // 'create', 'update', 'delete'
	EntityType string    `gorm:"size:30;index:idx_audit_entity" json:"entity_type"`
	EntityID   uint      `gorm:"index:idx_audit_entity" json:"entity_id"`
	OldValue   string    `gorm:"type:text" json:"old_value"`
	NewValue   string    `gorm:"type:text" json:"new_value"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaleCounter - Single-row counter backing sale number allocation
type SaleCounter struct {
	ID        uint  `gorm:"primaryKey"`
	NextValue int64 `gorm:"not null"`
}

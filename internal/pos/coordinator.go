package pos

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bodega-pos/internal/audit"
	"bodega-pos/internal/inventory"
	"bodega-pos/internal/models"
)

// LineRequest is one cart line as submitted by the POS UI. Prices are never
// taken from the client; they are read from the catalog at commit time.
type LineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CommitSaleRequest carries everything needed to turn a cart into a sale.
type CommitSaleRequest struct {
	CashierID     uint
	CustomerID    *uint
	Lines         []LineRequest
	Discount      Discount
	PaymentMethod string
	AmountPaid    *decimal.Decimal
}

// Coordinator orchestrates the commit of a sale: validation, sale number
// allocation, stock decrements, sale/item inserts and audit entries, all in
// one database transaction. Any failure rolls the whole commit back.
type Coordinator struct {
	db      *gorm.DB
	ledger  *inventory.Ledger
	numbers *NumberGenerator
	taxRate decimal.Decimal
	log     zerolog.Logger
}

func NewCoordinator(db *gorm.DB, ledger *inventory.Ledger, numbers *NumberGenerator, taxRate decimal.Decimal, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		db:      db,
		ledger:  ledger,
		numbers: numbers,
		taxRate: taxRate,
		log:     log,
	}
}

// CommitSale validates the cart and atomically persists the sale with all its
// side effects. On success the returned sale carries the generated number,
// server-computed totals and the items with product details for the receipt.
func (c *Coordinator) CommitSale(ctx context.Context, req CommitSaleRequest) (*models.Sale, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, inventory.ErrInvalidQuantity
		}
	}
	if req.Discount.Type == "" {
		req.Discount.Type = DiscountNone
	}
	if !IsSupportedPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPayment
	}

	var saleID uint
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.CustomerID != nil {
			var count int64
			if err := tx.Model(&models.Customer{}).Where("id = ?", *req.CustomerID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrInvalidCustomer
			}
		}

		// Snapshot unit prices from the catalog. Client-supplied totals are
		// display hints only and never reach this path.
		lines := make([]CartLine, 0, len(req.Lines))
		for _, line := range req.Lines {
			var product models.Product
			err := tx.Where("id = ? AND is_active = ?", line.ProductID, true).First(&product).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &inventory.ProductNotFoundError{ProductID: line.ProductID}
				}
				return err
			}
			lines = append(lines, CartLine{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.SellingPrice,
			})
		}

		totals := ComputeTotals(lines, req.Discount, c.taxRate)
		if totals.Total.LessThan(decimal.Zero) {
			return ErrNegativeTotal
		}

		amountPaid := totals.Total
		changeDue := decimal.Zero
		if req.PaymentMethod == PaymentCash && req.AmountPaid != nil {
			if req.AmountPaid.LessThan(totals.Total) {
				return ErrInsufficientPayment
			}
			amountPaid = *req.AmountPaid
			changeDue = ChangeDue(amountPaid, totals.Total)
		}

		saleNumber, err := c.numbers.Next(tx)
		if err != nil {
			return err
		}

		sale := models.Sale{
			SaleNumber:     saleNumber,
			CustomerID:     req.CustomerID,
			CashierID:      req.CashierID,
			Subtotal:       totals.Subtotal,
			DiscountType:   req.Discount.Type,
			DiscountValue:  req.Discount.Value,
			DiscountAmount: totals.DiscountAmount,
			TaxAmount:      totals.TaxAmount,
			TotalAmount:    totals.Total,
			PaymentMethod:  req.PaymentMethod,
			AmountPaid:     amountPaid,
			ChangeDue:      changeDue,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for _, line := range lines {
			if _, err := c.ledger.ReserveAndDecrement(tx, req.CashierID, line.ProductID, line.Quantity); err != nil {
				return err
			}

			item := models.SaleItem{
				SaleID:     sale.ID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			if err := audit.Record(tx, req.CashierID, audit.ActionCreate, audit.EntitySaleItem, item.ID, nil, &item); err != nil {
				return err
			}
		}

		if err := audit.Record(tx, req.CashierID, audit.ActionCreate, audit.EntitySale, sale.ID, nil, &sale); err != nil {
			return err
		}

		saleID = sale.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	var committed models.Sale
	if err := c.db.WithContext(ctx).Preload("Items.Product").First(&committed, saleID).Error; err != nil {
		return nil, err
	}

	c.log.Info().
		Str("sale_number", committed.SaleNumber).
		Str("total", committed.TotalAmount.String()).
		Uint("cashier_id", committed.CashierID).
		Int("items", len(committed.Items)).
		Msg("sale committed")

	return &committed, nil
}

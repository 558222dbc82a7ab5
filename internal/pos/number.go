package pos

import (
	"fmt"

	"gorm.io/gorm"

	"bodega-pos/internal/models"
)

// saleCounterID is the fixed primary key of the single counter row.
const saleCounterID = 1

// NumberGenerator allocates unique, strictly increasing sale numbers such as
// "BD-000123" from a dedicated counter row.
type NumberGenerator struct {
	Prefix string
}

// Next allocates the next sale number inside tx. The single UPDATE takes a
// row lock that is held until the surrounding transaction commits, so two
// concurrent commits can never read the same counter value.
func (g *NumberGenerator) Next(tx *gorm.DB) (string, error) {
	res := tx.Model(&models.SaleCounter{}).
		Where("id = ?", saleCounterID).
		UpdateColumn("next_value", gorm.Expr("next_value + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", fmt.Errorf("sale counter row %d missing", saleCounterID)
	}

	var counter models.SaleCounter
	if err := tx.First(&counter, saleCounterID).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%06d", g.Prefix, counter.NextValue), nil
}

// SeedCounter creates the counter row if it does not exist yet. Called once
// at startup after migration.
func SeedCounter(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SaleCounter{}).Where("id = ?", saleCounterID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.SaleCounter{ID: saleCounterID, NextValue: 0}).Error
}

// Package audit appends immutable before/after snapshots of every entity
// mutation performed through the system's write paths.
package audit

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"bodega-pos/internal/models"
)

// Actions recorded against an entity.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entity types referenced by audit entries.
const (
	EntityProduct  = "product"
	EntitySale     = "sale"
	EntitySaleItem = "sale_item"
	EntityCustomer = "customer"
	EntityUser     = "user"
)

// Record appends one audit entry inside tx. Because the entry rides the
// caller's transaction, the business mutation and its audit trail commit or
// fail together. oldValue / newValue may be nil for creates and deletes.
func Record(tx *gorm.DB, actorID uint, action, entityType string, entityID uint, oldValue, newValue interface{}) error {
	entry := models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	var err error
	if entry.OldValue, err = snapshot(oldValue); err != nil {
		return fmt.Errorf("audit: marshal old value: %w", err)
	}
	if entry.NewValue, err = snapshot(newValue); err != nil {
		return fmt.Errorf("audit: marshal new value: %w", err)
	}

	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit: append entry: %w", err)
	}
	return nil
}

func snapshot(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

package inventory

import (
	"EcoPanier/entities"
	"context"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		CreateItem(ctx context.Context, item *entities.InventoryItem) error
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, sessionID, id string) error
		GetItemsBySession(ctx context.Context, sessionID string) ([]*entities.InventoryItem, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, sessionID, id string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, id).
		Delete(&entities.InventoryItem{}).Error
}

// GetItemsBySession returns the session's items in insertion order.
func (r *inventoryRepository) GetItemsBySession(ctx context.Context, sessionID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

package shopping

import (
	"EcoPanier/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddItem(ctx context.Context, item *entities.ShoppingListItem) error
		RemoveItem(ctx context.Context, sessionID, itemID string) error
		ClearItems(ctx context.Context, sessionID string) error
		GetItemsBySession(ctx context.Context, sessionID string) ([]*entities.ShoppingListItem, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND item_id = ?", sessionID, itemID).
		Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepository) ClearItems(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepository) GetItemsBySession(ctx context.Context, sessionID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("added_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

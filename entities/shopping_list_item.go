package entities

import (
	"github.com/google/uuid"
	"time"
)

type ShoppingListItem struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID          uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_shopping_session_item" json:"session_id"`
	ItemID             string    `gorm:"uniqueIndex:idx_shopping_session_item" json:"item_id"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	Quantity           float64   `json:"quantity"`
	Unit               string    `json:"unit"`
	ExpiryDate         time.Time `gorm:"type:date" json:"expiry_date"`
	ImageURL           string    `json:"image_url,omitempty"`
	Barcode            string    `json:"barcode,omitempty"`
	AddedFromInventory bool      `json:"added_from_inventory"`
	AddedAt            time.Time `gorm:"type:timestamp" json:"added_at"`

	Session *Session `gorm:"foreignKey:SessionID"`
	Timestamp
}

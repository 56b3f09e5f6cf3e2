package entities

import (
	"github.com/google/uuid"
	"time"
)

// InventoryItem is the persisted form of an inventory entry. Status and day
// counts are never stored.
type InventoryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;index" json:"session_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `gorm:"type:date" json:"expiry_date"`
	ImageURL   string    `json:"image_url,omitempty"`
	Barcode    string    `json:"barcode,omitempty"`

	Session *Session `gorm:"foreignKey:SessionID"`
	Timestamp
}

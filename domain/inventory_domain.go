package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessUploadItemImage     = "inventory item image uploaded successfully"
	MessageSuccessGetDashboardStats   = "dashboard statistics retrieved successfully"
	MessageSuccessScanBarcode         = "barcode processed successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedUploadItemImage     = "failed to upload inventory item image"
	MessageFailedGetDashboardStats   = "failed to retrieve dashboard statistics"
	MessageFailedScanBarcode         = "failed to process barcode"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrDuplicateItemID       = errors.New("inventory item id already exists")
	ErrInvalidDate           = errors.New("invalid date")
)

const (
	DateLayout = "2006-01-02"

	DefaultCategory  = "Autres"
	DefaultUnit      = "unité"
	DefaultItemImage = "https://picsum.photos/200"
	AllCategories    = "Toutes"

	// ScannedItemShelfLifeDays is the expiry applied to items without a known date.
	ScannedItemShelfLifeDays = 30
)

// ExpiryStatus is the urgency tier of an inventory item.
type ExpiryStatus string

const (
	StatusUrgent ExpiryStatus = "urgent"
	StatusSoon   ExpiryStatus = "soon"
	StatusSafe   ExpiryStatus = "safe"
)

func (s ExpiryStatus) Valid() bool {
	switch s {
	case StatusUrgent, StatusSoon, StatusSafe:
		return true
	}
	return false
}

type (
	// InventoryItem is one tracked food unit. DaysUntilExpiry and Status are
	// derived from ExpiryDate and are overwritten on every evaluation.
	InventoryItem struct {
		ID              string
		Name            string
		Category        string
		Quantity        float64
		Unit            string
		ExpiryDate      time.Time
		DaysUntilExpiry int
		Status          ExpiryStatus
		Image           string
		Barcode         string
		CreatedAt       time.Time
	}

	AddInventoryItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Category   string  `json:"category"`
		Quantity   float64 `json:"quantity" validate:"gte=0"`
		Unit       string  `json:"unit"`
		ExpiryDate string  `json:"expiry_date"`
		Image      string  `json:"image"`
		Barcode    string  `json:"barcode"`
	}

	UpdateInventoryItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Category   string  `json:"category"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit"`
		ExpiryDate string  `json:"expiry_date" validate:"required"`
		Image      string  `json:"image"`
	}

	InventoryFilter struct {
		Category string
		Search   string
		Sort     string
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	InventoryItemResponse struct {
		ID              string       `json:"id"`
		Name            string       `json:"name"`
		Category        string       `json:"category"`
		Quantity        float64      `json:"quantity"`
		Unit            string       `json:"unit"`
		ExpiryDate      string       `json:"expiry_date"`
		DaysUntilExpiry int          `json:"days_until_expiry"`
		Status          ExpiryStatus `json:"status"`
		Image           string       `json:"image"`
		Barcode         string       `json:"barcode,omitempty"`
	}

	DashboardStats struct {
		TotalItems   int             `json:"total_items"`
		UrgentItems  int             `json:"urgent_items"`
		SoonItems    int             `json:"soon_items"`
		SafeItems    int             `json:"safe_items"`
		ExpiredItems int             `json:"expired_items"`
		TopUrgent    []InventoryItem `json:"-"`
	}

	DashboardStatsResponse struct {
		TotalItems   int                     `json:"total_items"`
		UrgentItems  int                     `json:"urgent_items"`
		SoonItems    int                     `json:"soon_items"`
		SafeItems    int                     `json:"safe_items"`
		ExpiredItems int                     `json:"expired_items"`
		TopUrgent    []InventoryItemResponse `json:"top_urgent"`
	}
)

func NewInventoryItemResponse(item InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		ExpiryDate:      item.ExpiryDate.Format(DateLayout),
		DaysUntilExpiry: item.DaysUntilExpiry,
		Status:          item.Status,
		Image:           item.Image,
		Barcode:         item.Barcode,
	}
}

func NewInventoryItemResponses(items []InventoryItem) []InventoryItemResponse {
	res := make([]InventoryItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, NewInventoryItemResponse(item))
	}
	return res
}

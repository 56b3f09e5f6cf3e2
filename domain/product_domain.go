package domain

const (
	ScanStatusAdded               = "added"
	ScanStatusManualEntryRequired = "manual_entry_required"

	MessageProductNotFound    = "product not found, add it manually"
	MessageProductLookupError = "connection problem, add the product manually"
)

type (
	// ProductLookupResult is what the barcode lookup collaborator returns.
	ProductLookupResult struct {
		Found        bool
		Name         string
		Category     string
		ImageURL     string
		QuantityText string
	}

	ScanBarcodeRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	ScanBarcodeResponse struct {
		Status  string                 `json:"status"`
		Barcode string                 `json:"barcode"`
		Item    *InventoryItemResponse `json:"item,omitempty"`
		Message string                 `json:"message,omitempty"`
	}
)

package domain

import "time"

var (
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem    = "item added to shopping list"
	MessageSuccessRemoveShoppingItem = "item removed from shopping list"
	MessageSuccessClearShoppingList  = "shopping list cleared"
	MessageSuccessEmailShoppingList  = "shopping list sent"

	MessageFailedGetShoppingList    = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem    = "failed to add item to shopping list"
	MessageFailedRemoveShoppingItem = "failed to remove item from shopping list"
	MessageFailedClearShoppingList  = "failed to clear shopping list"
	MessageFailedEmailShoppingList  = "failed to send shopping list"
)

type (
	// ShoppingListItem is a frozen copy of an inventory item. Later edits to
	// the source item do not reach it.
	ShoppingListItem struct {
		InventoryItem
		AddedFromInventory bool
		AddedAt            time.Time
	}

	AddShoppingItemRequest struct {
		ItemID string `json:"item_id" validate:"required"`
	}

	EmailShoppingListRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ShoppingListItemResponse struct {
		InventoryItemResponse
		AddedFromInventory bool      `json:"added_from_inventory"`
		AddedAt            time.Time `json:"added_at"`
	}

	ShoppingListResponse struct {
		Items []ShoppingListItemResponse `json:"items"`
		Total int                        `json:"total"`
	}

	AddShoppingItemResponse struct {
		Added bool                     `json:"added"`
		Item  ShoppingListItemResponse `json:"item"`
	}
)

func NewShoppingListItemResponse(item ShoppingListItem) ShoppingListItemResponse {
	return ShoppingListItemResponse{
		InventoryItemResponse: NewInventoryItemResponse(item.InventoryItem),
		AddedFromInventory:    item.AddedFromInventory,
		AddedAt:               item.AddedAt,
	}
}

func NewShoppingListResponse(items []ShoppingListItem) ShoppingListResponse {
	res := ShoppingListResponse{Items: make([]ShoppingListItemResponse, 0, len(items)), Total: len(items)}
	for _, item := range items {
		res.Items = append(res.Items, NewShoppingListItemResponse(item))
	}
	return res
}

package shopping

import (
	"EcoPanier/domain"
	"EcoPanier/entities"
	"EcoPanier/internal/metrics"
	"EcoPanier/internal/utils/mailing"
	"EcoPanier/pkg/expiry"
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	ShoppingService interface {
		GetList(ctx context.Context, sessionID string) (domain.ShoppingListResponse, error)
		AddItem(ctx context.Context, sessionID string, req domain.AddShoppingItemRequest) (domain.AddShoppingItemResponse, error)
		RemoveItem(ctx context.Context, sessionID, itemID string) error
		ClearList(ctx context.Context, sessionID string) error
		EmailList(ctx context.Context, sessionID string, req domain.EmailShoppingListRequest) error
	}

	// InventorySource resolves the inventory item being copied to the list.
	InventorySource interface {
		Item(ctx context.Context, sessionID, id string) (domain.InventoryItem, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		inventory          InventorySource
		mailer             mailing.Mailer
		clock              *expiry.Clock

		mu    sync.Mutex
		lists map[string]*List
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, inventory InventorySource, mailer mailing.Mailer, clock *expiry.Clock) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		inventory:          inventory,
		mailer:             mailer,
		clock:              clock,
		lists:              make(map[string]*List),
	}
}

// listFor returns the session's list, loading it on first use. s.mu must be held.
func (s *shoppingService) listFor(ctx context.Context, sessionID string) (*List, error) {
	if list, ok := s.lists[sessionID]; ok {
		return list, nil
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.shoppingRepository.GetItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	list := NewList(s.clock.Now)
	for _, row := range rows {
		list.restore(toDomain(row))
	}
	s.lists[sessionID] = list
	return list, nil
}

func (s *shoppingService) withList(ctx context.Context, sessionID string, fn func(*List) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.listFor(ctx, sessionID)
	if err != nil {
		return err
	}
	return fn(list)
}

func (s *shoppingService) GetList(ctx context.Context, sessionID string) (domain.ShoppingListResponse, error) {
	items, err := s.items(ctx, sessionID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return domain.NewShoppingListResponse(items), nil
}

// items returns the entries with day counts recomputed from their frozen expiry dates.
func (s *shoppingService) items(ctx context.Context, sessionID string) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	err := s.withList(ctx, sessionID, func(list *List) error {
		items = list.Items()
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.clock.Refresh(&items[i].InventoryItem)
	}
	return items, nil
}

// AddItem copies the inventory item onto the list. Adding the same item
// twice leaves the first snapshot in place.
func (s *shoppingService) AddItem(ctx context.Context, sessionID string, req domain.AddShoppingItemRequest) (domain.AddShoppingItemResponse, error) {
	item, err := s.inventory.Item(ctx, sessionID, strings.TrimSpace(req.ItemID))
	if err != nil {
		return domain.AddShoppingItemResponse{}, err
	}

	var entry domain.ShoppingListItem
	var added bool
	err = s.withList(ctx, sessionID, func(list *List) error {
		entry, added = list.AddFromInventory(item)
		if !added {
			return nil
		}
		if err := s.shoppingRepository.AddItem(ctx, toEntity(sessionID, entry)); err != nil {
			list.Remove(entry.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.AddShoppingItemResponse{}, err
	}

	if added {
		metrics.ShoppingListMutations.WithLabelValues("add").Inc()
	}
	return domain.AddShoppingItemResponse{
		Added: added,
		Item:  domain.NewShoppingListItemResponse(entry),
	}, nil
}

func (s *shoppingService) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	return s.withList(ctx, sessionID, func(list *List) error {
		if !list.Contains(itemID) {
			return nil
		}
		if err := s.shoppingRepository.RemoveItem(ctx, sessionID, itemID); err != nil {
			return err
		}
		list.Remove(itemID)
		metrics.ShoppingListMutations.WithLabelValues("remove").Inc()
		return nil
	})
}

func (s *shoppingService) ClearList(ctx context.Context, sessionID string) error {
	return s.withList(ctx, sessionID, func(list *List) error {
		if err := s.shoppingRepository.ClearItems(ctx, sessionID); err != nil {
			return err
		}
		list.Clear()
		metrics.ShoppingListMutations.WithLabelValues("clear").Inc()
		return nil
	})
}

func (s *shoppingService) EmailList(ctx context.Context, sessionID string, req domain.EmailShoppingListRequest) error {
	items, err := s.items(ctx, sessionID)
	if err != nil {
		return err
	}

	body, err := renderShoppingList(items)
	if err != nil {
		return err
	}

	err = s.mailer.SendMail(req.Email, shoppingListSubject, body)
	metrics.ObserveExternal(metrics.ServiceSMTP, err)
	if err != nil {
		log.Errorf("failed to send shopping list to %s: %v", req.Email, err)
		return domain.ExternalError(metrics.ServiceSMTP, err)
	}
	return nil
}

func toDomain(row *entities.ShoppingListItem) domain.ShoppingListItem {
	return domain.ShoppingListItem{
		InventoryItem: domain.InventoryItem{
			ID:         row.ItemID,
			Name:       row.Name,
			Category:   row.Category,
			Quantity:   row.Quantity,
			Unit:       row.Unit,
			ExpiryDate: expiry.NormalizeDate(row.ExpiryDate),
			Image:      row.ImageURL,
			Barcode:    row.Barcode,
		},
		AddedFromInventory: row.AddedFromInventory,
		AddedAt:            row.AddedAt,
	}
}

func toEntity(sessionID string, item domain.ShoppingListItem) *entities.ShoppingListItem {
	return &entities.ShoppingListItem{
		ID:                 uuid.New(),
		SessionID:          uuid.MustParse(sessionID),
		ItemID:             item.ID,
		Name:               item.Name,
		Category:           item.Category,
		Quantity:           item.Quantity,
		Unit:               item.Unit,
		ExpiryDate:         item.ExpiryDate,
		ImageURL:           item.Image,
		Barcode:            item.Barcode,
		AddedFromInventory: item.AddedFromInventory,
		AddedAt:            item.AddedAt,
	}
}

package inventory

import (
	"EcoPanier/domain"
	"EcoPanier/entities"
	"EcoPanier/internal/metrics"
	"EcoPanier/internal/utils/storage"
	"EcoPanier/pkg/expiry"
	"EcoPanier/pkg/product"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	SortUrgency   = "urgency"
	SortInsertion = "insertion"

	imageFolder = "inventory-items"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, sessionID string, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, sessionID, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error)
		DeleteItem(ctx context.Context, sessionID, id string) error
		GetItem(ctx context.Context, sessionID, id string) (domain.InventoryItemResponse, error)
		ListItems(ctx context.Context, sessionID string, filter domain.InventoryFilter) ([]domain.InventoryItemResponse, error)
		GetDashboardStats(ctx context.Context, sessionID string) (domain.DashboardStatsResponse, error)
		ScanBarcode(ctx context.Context, sessionID string, req domain.ScanBarcodeRequest) (domain.ScanBarcodeResponse, error)
		UploadItemImage(ctx context.Context, sessionID string, req domain.UploadItemImageRequest) (domain.InventoryItemResponse, error)

		// Item and Snapshot hand refreshed domain items to other services.
		Item(ctx context.Context, sessionID, id string) (domain.InventoryItem, error)
		Snapshot(ctx context.Context, sessionID string) ([]domain.InventoryItem, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		clock               *expiry.Clock
		lookup              product.Lookup
		s3                  storage.AwsS3

		mu     sync.Mutex
		stores map[string]*Store
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, clock *expiry.Clock, lookup product.Lookup, s3 storage.AwsS3) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		clock:               clock,
		lookup:              lookup,
		s3:                  s3,
		stores:              make(map[string]*Store),
	}
}

// storeFor returns the session's store, loading it on first use. s.mu must be held.
func (s *inventoryService) storeFor(ctx context.Context, sessionID string) (*Store, error) {
	if store, ok := s.stores[sessionID]; ok {
		return store, nil
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.inventoryRepository.GetItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store := NewStore(s.clock)
	for _, row := range rows {
		if _, err := store.Add(toDomain(row)); err != nil {
			log.Warnf("skipping inventory row %s: %v", row.ID, err)
		}
	}
	s.stores[sessionID] = store
	return store, nil
}

func (s *inventoryService) withStore(ctx context.Context, sessionID string, fn func(*Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeFor(ctx, sessionID)
	if err != nil {
		return err
	}
	return fn(store)
}

func (s *inventoryService) AddItem(ctx context.Context, sessionID string, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error) {
	item, err := s.newItem(req)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	var added domain.InventoryItem
	err = s.withStore(ctx, sessionID, func(store *Store) error {
		added, err = store.Add(item)
		if err != nil {
			return err
		}
		if err := s.inventoryRepository.CreateItem(ctx, toEntity(sessionID, added)); err != nil {
			store.Remove(added.ID)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	metrics.InventoryMutations.WithLabelValues("add").Inc()
	return domain.NewInventoryItemResponse(added), nil
}

// newItem applies the entry defaults shared by the form, manual entry after
// a failed scan and resolved barcodes.
func (s *inventoryService) newItem(req domain.AddInventoryItemRequest) (domain.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.InventoryItem{}, domain.NewValidationError("name", "required")
	}
	if req.Quantity < 0 {
		return domain.InventoryItem{}, domain.NewValidationError("quantity", "must be greater than zero")
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var expiryDate time.Time
	if strings.TrimSpace(req.ExpiryDate) == "" {
		expiryDate = s.clock.DaysFromToday(domain.ScannedItemShelfLifeDays)
	} else {
		expiryDate = s.clock.ParseDateOrToday(req.ExpiryDate)
	}

	return domain.InventoryItem{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   orDefault(req.Category, domain.DefaultCategory),
		Quantity:   quantity,
		Unit:       orDefault(req.Unit, domain.DefaultUnit),
		ExpiryDate: expiryDate,
		Image:      orDefault(req.Image, domain.DefaultItemImage),
		Barcode:    strings.TrimSpace(req.Barcode),
		CreatedAt:  time.Now(),
	}, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, sessionID, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.InventoryItemResponse{}, domain.NewValidationError("name", "required")
	}
	if req.Quantity <= 0 {
		return domain.InventoryItemResponse{}, domain.NewValidationError("quantity", "must be greater than zero")
	}
	expiryDate := s.clock.ParseDateOrToday(req.ExpiryDate)

	var updated domain.InventoryItem
	err := s.withStore(ctx, sessionID, func(store *Store) error {
		existing, ok := store.Get(id)
		if !ok {
			return domain.ErrInventoryItemNotFound
		}

		next := existing
		next.Name = name
		next.Category = orDefault(req.Category, existing.Category)
		next.Quantity = req.Quantity
		next.Unit = orDefault(req.Unit, existing.Unit)
		next.ExpiryDate = expiryDate
		next.Image = orDefault(req.Image, existing.Image)

		var err error
		updated, err = store.Update(next)
		if err != nil {
			return err
		}
		if err := s.inventoryRepository.UpdateItem(ctx, toEntity(sessionID, updated)); err != nil {
			_, _ = store.Update(existing)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	metrics.InventoryMutations.WithLabelValues("update").Inc()
	return domain.NewInventoryItemResponse(updated), nil
}

// DeleteItem is silent when the item does not exist.
func (s *inventoryService) DeleteItem(ctx context.Context, sessionID, id string) error {
	var removed domain.InventoryItem
	var found bool
	err := s.withStore(ctx, sessionID, func(store *Store) error {
		removed, found = store.Get(id)
		if !found {
			return nil
		}
		if err := s.inventoryRepository.DeleteItem(ctx, sessionID, id); err != nil {
			return err
		}
		store.Remove(id)
		return nil
	})
	if err != nil || !found {
		return err
	}

	metrics.InventoryMutations.WithLabelValues("remove").Inc()
	if key := s.s3.GetObjectKeyFromLink(removed.Image); key != "" {
		err := s.s3.DeleteFile(key)
		metrics.ObserveExternal(metrics.ServiceS3, err)
		if err != nil {
			log.Warnf("failed to delete image %s: %v", key, err)
		}
	}
	return nil
}

func (s *inventoryService) Item(ctx context.Context, sessionID, id string) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := s.withStore(ctx, sessionID, func(store *Store) error {
		var ok bool
		if item, ok = store.Get(id); !ok {
			return domain.ErrInventoryItemNotFound
		}
		return nil
	})
	return item, err
}

func (s *inventoryService) GetItem(ctx context.Context, sessionID, id string) (domain.InventoryItemResponse, error) {
	item, err := s.Item(ctx, sessionID, id)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return domain.NewInventoryItemResponse(item), nil
}

func (s *inventoryService) Snapshot(ctx context.Context, sessionID string) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := s.withStore(ctx, sessionID, func(store *Store) error {
		items = store.Snapshot()
		return nil
	})
	return items, err
}

func (s *inventoryService) ListItems(ctx context.Context, sessionID string, filter domain.InventoryFilter) ([]domain.InventoryItemResponse, error) {
	pred := All(InCategory(filter.Category))
	if strings.TrimSpace(filter.Search) != "" {
		pred = All(pred, NameContains(filter.Search))
	}

	var items []domain.InventoryItem
	err := s.withStore(ctx, sessionID, func(store *Store) error {
		items = slices.Collect(store.Query(pred))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if filter.Sort != SortInsertion {
		items = SortedByUrgency(items)
	}
	return domain.NewInventoryItemResponses(items), nil
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, sessionID string) (domain.DashboardStatsResponse, error) {
	var stats domain.DashboardStats
	err := s.withStore(ctx, sessionID, func(store *Store) error {
		stats = store.Stats()
		return nil
	})
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:   stats.TotalItems,
		UrgentItems:  stats.UrgentItems,
		SoonItems:    stats.SoonItems,
		SafeItems:    stats.SafeItems,
		ExpiredItems: stats.ExpiredItems,
		TopUrgent:    domain.NewInventoryItemResponses(stats.TopUrgent),
	}, nil
}

// ScanBarcode adds the product behind barcode, or asks the client for manual
// entry when the lookup misses or fails.
func (s *inventoryService) ScanBarcode(ctx context.Context, sessionID string, req domain.ScanBarcodeRequest) (domain.ScanBarcodeResponse, error) {
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return domain.ScanBarcodeResponse{}, domain.NewValidationError("barcode", "required")
	}

	res, err := s.lookup.LookupBarcode(ctx, barcode)
	if err != nil {
		log.Warnf("barcode lookup failed for %s: %v", barcode, err)
		return domain.ScanBarcodeResponse{
			Status:  domain.ScanStatusManualEntryRequired,
			Barcode: barcode,
			Message: domain.MessageProductLookupError,
		}, nil
	}
	if !res.Found {
		return domain.ScanBarcodeResponse{
			Status:  domain.ScanStatusManualEntryRequired,
			Barcode: barcode,
			Message: domain.MessageProductNotFound,
		}, nil
	}

	item, err := s.AddItem(ctx, sessionID, domain.AddInventoryItemRequest{
		Name:       res.Name,
		Category:   res.Category,
		Quantity:   1,
		Unit:       res.QuantityText,
		ExpiryDate: expiry.FormatDate(s.clock.DaysFromToday(domain.ScannedItemShelfLifeDays)),
		Image:      res.ImageURL,
		Barcode:    barcode,
	})
	if err != nil {
		return domain.ScanBarcodeResponse{}, err
	}

	return domain.ScanBarcodeResponse{
		Status:  domain.ScanStatusAdded,
		Barcode: barcode,
		Item:    &item,
	}, nil
}

func (s *inventoryService) UploadItemImage(ctx context.Context, sessionID string, req domain.UploadItemImageRequest) (domain.InventoryItemResponse, error) {
	if req.Image == nil {
		return domain.InventoryItemResponse{}, domain.NewValidationError("image", "required")
	}
	current, err := s.Item(ctx, sessionID, req.ItemID)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	var objectKey string
	if existingKey := s.s3.GetObjectKeyFromLink(current.Image); existingKey != "" {
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fmt.Sprintf("item-%s", current.ID), req.Image, imageFolder, storage.AllowImage...)
	}
	if errors.Is(err, storage.ErrFileTypeNotAllowed) {
		return domain.InventoryItemResponse{}, domain.NewValidationError("image", "file type not allowed")
	}
	metrics.ObserveExternal(metrics.ServiceS3, err)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ExternalError(metrics.ServiceS3, err)
	}
	link := s.s3.GetPublicLinkKey(objectKey)

	var updated domain.InventoryItem
	err = s.withStore(ctx, sessionID, func(store *Store) error {
		existing, ok := store.Get(req.ItemID)
		if !ok {
			return domain.ErrInventoryItemNotFound
		}
		next := existing
		next.Image = link

		var err error
		if updated, err = store.Update(next); err != nil {
			return err
		}
		if err := s.inventoryRepository.UpdateItem(ctx, toEntity(sessionID, updated)); err != nil {
			_, _ = store.Update(existing)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	metrics.InventoryMutations.WithLabelValues("update").Inc()
	return domain.NewInventoryItemResponse(updated), nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func toDomain(row *entities.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:         row.ID.String(),
		Name:       row.Name,
		Category:   row.Category,
		Quantity:   row.Quantity,
		Unit:       row.Unit,
		ExpiryDate: expiry.NormalizeDate(row.ExpiryDate),
		Image:      row.ImageURL,
		Barcode:    row.Barcode,
		CreatedAt:  row.CreatedAt,
	}
}

func toEntity(sessionID string, item domain.InventoryItem) *entities.InventoryItem {
	return &entities.InventoryItem{
		ID:         uuid.MustParse(item.ID),
		SessionID:  uuid.MustParse(sessionID),
		Name:       item.Name,
		Category:   item.Category,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		ExpiryDate: item.ExpiryDate,
		ImageURL:   item.Image,
		Barcode:    item.Barcode,
		Timestamp: entities.Timestamp{
			CreatedAt: item.CreatedAt,
		},
	}
}

package inventory

import (
	"EcoPanier/domain"
	"EcoPanier/pkg/expiry"
	"iter"
	"slices"
	"strings"
)

// TopUrgentLimit is how many urgent items the dashboard highlights.
const TopUrgentLimit = 3

// Predicate selects items in a Query.
type Predicate func(domain.InventoryItem) bool

func ByID(id string) Predicate {
	return func(item domain.InventoryItem) bool { return item.ID == id }
}

// InCategory matches every item when category is empty or "Toutes".
func InCategory(category string) Predicate {
	if category == "" || category == domain.AllCategories {
		return func(domain.InventoryItem) bool { return true }
	}
	return func(item domain.InventoryItem) bool { return item.Category == category }
}

// NameContains is a case-insensitive substring match on the item name.
func NameContains(term string) Predicate {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(item domain.InventoryItem) bool {
		return strings.Contains(strings.ToLower(item.Name), term)
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(item domain.InventoryItem) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Store is the ordered item collection of one household. It is not safe for
// concurrent use; callers serialize access.
type Store struct {
	clock *expiry.Clock
	items []domain.InventoryItem
}

func NewStore(clock *expiry.Clock) *Store {
	return &Store{clock: clock}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item domain.InventoryItem) bool { return item.ID == id })
}

// Add appends item. The id must not already be present.
func (s *Store) Add(item domain.InventoryItem) (domain.InventoryItem, error) {
	if s.indexOf(item.ID) >= 0 {
		return domain.InventoryItem{}, domain.ErrDuplicateItemID
	}
	s.clock.Refresh(&item)
	s.items = append(s.items, item)
	return item, nil
}

// Update replaces the item with the same id, keeping its position.
func (s *Store) Update(item domain.InventoryItem) (domain.InventoryItem, error) {
	i := s.indexOf(item.ID)
	if i < 0 {
		return domain.InventoryItem{}, domain.ErrInventoryItemNotFound
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.items[i].CreatedAt
	}
	s.clock.Refresh(&item)
	s.items[i] = item
	return item, nil
}

// Remove deletes the item with id and reports whether it existed.
func (s *Store) Remove(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *Store) Get(id string) (domain.InventoryItem, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.InventoryItem{}, false
	}
	return s.clock.Evaluate(s.items[i]), true
}

func (s *Store) Len() int {
	return len(s.items)
}

// Query yields refreshed copies of matching items in insertion order.
// A nil predicate matches everything.
func (s *Store) Query(pred Predicate) iter.Seq[domain.InventoryItem] {
	return func(yield func(domain.InventoryItem) bool) {
		for _, stored := range s.items {
			item := s.clock.Evaluate(stored)
			if pred != nil && !pred(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Snapshot returns every item, refreshed, in insertion order.
func (s *Store) Snapshot() []domain.InventoryItem {
	return slices.Collect(s.Query(nil))
}

// SortedByUrgency orders items by days until expiry, ties kept in insertion order.
func SortedByUrgency(items []domain.InventoryItem) []domain.InventoryItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.InventoryItem) int {
		return a.DaysUntilExpiry - b.DaysUntilExpiry
	})
	return sorted
}

func (s *Store) SortedByUrgency() []domain.InventoryItem {
	return SortedByUrgency(s.Snapshot())
}

// Stats counts items per status and picks the first urgent ones.
func (s *Store) Stats() domain.DashboardStats {
	stats := domain.DashboardStats{TopUrgent: []domain.InventoryItem{}}
	for item := range s.Query(nil) {
		stats.TotalItems++
		switch item.Status {
		case domain.StatusUrgent:
			stats.UrgentItems++
			if len(stats.TopUrgent) < TopUrgentLimit {
				stats.TopUrgent = append(stats.TopUrgent, item)
			}
		case domain.StatusSoon:
			stats.SoonItems++
		case domain.StatusSafe:
			stats.SafeItems++
		}
		if expiry.IsExpired(item.DaysUntilExpiry) {
			stats.ExpiredItems++
		}
	}
	return stats
}

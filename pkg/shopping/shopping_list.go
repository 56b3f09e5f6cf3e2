package shopping

import (
	"EcoPanier/domain"
	"slices"
	"time"
)

// List is a deduplicated set of inventory snapshots in insertion order.
// It is not safe for concurrent use.
type List struct {
	items []domain.ShoppingListItem
	now   func() time.Time
}

func NewList(now func() time.Time) *List {
	if now == nil {
		now = time.Now
	}
	return &List{now: now}
}

func (l *List) indexOf(id string) int {
	return slices.IndexFunc(l.items, func(item domain.ShoppingListItem) bool { return item.ID == id })
}

// AddFromInventory copies item onto the list. It reports false and changes
// nothing when an entry for the same id is already there.
func (l *List) AddFromInventory(item domain.InventoryItem) (domain.ShoppingListItem, bool) {
	if i := l.indexOf(item.ID); i >= 0 {
		return l.items[i], false
	}
	entry := domain.ShoppingListItem{
		InventoryItem:      item,
		AddedFromInventory: true,
		AddedAt:            l.now(),
	}
	l.items = append(l.items, entry)
	return entry, true
}

// restore appends an entry loaded from storage as is.
func (l *List) restore(entry domain.ShoppingListItem) {
	if l.indexOf(entry.ID) < 0 {
		l.items = append(l.items, entry)
	}
}

func (l *List) Remove(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List) Clear() {
	l.items = nil
}

func (l *List) Contains(id string) bool {
	return l.indexOf(id) >= 0
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the entries in insertion order.
func (l *List) Items() []domain.ShoppingListItem {
	return slices.Clone(l.items)
}

package expiry

import "EcoPanier/domain"

const (
	UrgentMaxDays = 3
	SoonMaxDays   = 7
)

// Classify maps a day count to its urgency tier. Expired items are urgent.
func Classify(days int) domain.ExpiryStatus {
	switch {
	case days <= UrgentMaxDays:
		return domain.StatusUrgent
	case days <= SoonMaxDays:
		return domain.StatusSoon
	default:
		return domain.StatusSafe
	}
}

// IsExpired is a display helper, not a fourth status.
func IsExpired(days int) bool {
	return days <= 0
}

// Refresh overwrites the derived fields of item from its expiry date.
// Every read and write path goes through here.
func (c *Clock) Refresh(item *domain.InventoryItem) {
	item.ExpiryDate = NormalizeDate(item.ExpiryDate)
	item.DaysUntilExpiry = DaysUntil(item.ExpiryDate, c.Now())
	item.Status = Classify(item.DaysUntilExpiry)
}

// Evaluate returns a refreshed copy of item.
func (c *Clock) Evaluate(item domain.InventoryItem) domain.InventoryItem {
	c.Refresh(&item)
	return item
}

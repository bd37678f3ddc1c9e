// Package availability resolves which slots can be booked for a date and
// how many units a slot can take.
package availability

import (
	"github.com/nekogravitycat/experience-booking/internal/catalog"
)

const (
	// LowStockThreshold is the capacity below which a slot is flagged as low stock.
	LowStockThreshold = 5
	// AlmostFullThreshold is the capacity below which a selected slot warns about remaining spots.
	AlmostFullThreshold = 3
)

// ListDates returns the distinct dates of slots in first-seen order.
func ListDates(slots []catalog.Slot) []catalog.Date {
	seen := make(map[catalog.Date]struct{}, len(slots))
	dates := make([]catalog.Date, 0, len(slots))
	for _, s := range slots {
		if _, ok := seen[s.Date]; ok {
			continue
		}
		seen[s.Date] = struct{}{}
		dates = append(dates, s.Date)
	}
	return dates
}

// SlotsForDate returns the slots on date, preserving catalog order.
// A date without slots yields an empty slice.
func SlotsForDate(slots []catalog.Slot, date catalog.Date) []catalog.Slot {
	out := make([]catalog.Slot, 0)
	for _, s := range slots {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// FindSlot looks up the slot on date with the given time label.
func FindSlot(slots []catalog.Slot, date catalog.Date, time string) (catalog.Slot, bool) {
	for _, s := range slots {
		if s.Date == date && s.Time == time {
			return s, true
		}
	}
	return catalog.Slot{}, false
}

// MaxQuantity is the largest quantity the slot can satisfy.
func MaxQuantity(slot catalog.Slot) int {
	return max(slot.Capacity, 0)
}

// IsSelectable reports whether the slot has any capacity left.
func IsSelectable(slot catalog.Slot) bool {
	return slot.Capacity > 0
}

// IsLowStock reports whether a selectable slot has fewer than
// LowStockThreshold units left. Informational only.
func IsLowStock(slot catalog.Slot) bool {
	return slot.Capacity > 0 && slot.Capacity < LowStockThreshold
}

// IsAlmostFull reports whether a selectable slot has fewer than
// AlmostFullThreshold units left. Informational only.
func IsAlmostFull(slot catalog.Slot) bool {
	return slot.Capacity > 0 && slot.Capacity < AlmostFullThreshold
}

// ClampQuantity bounds q to [1, MaxQuantity(slot)]. A quantity within range
// is returned unchanged; a quantity above capacity is lowered to capacity.
// The result is 1 for an unselectable slot.
func ClampQuantity(q int, slot catalog.Slot) int {
	limit := MaxQuantity(slot)
	if q < 1 || limit < 1 {
		return 1
	}
	if q > limit {
		return limit
	}
	return q
}

// CanSatisfy reports whether slot can take q units.
func CanSatisfy(slot catalog.Slot, q int) bool {
	return q >= 1 && q <= MaxQuantity(slot)
}

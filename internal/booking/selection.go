package booking

import (
	"github.com/nekogravitycat/experience-booking/internal/availability"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/pricing"
)

// Selection is the date, slot and quantity a customer has picked.
// The slot, when set, always belongs to Date and Quantity never exceeds
// its capacity.
type Selection struct {
	Date     catalog.Date
	Slot     *catalog.Slot
	Quantity int
}

// NewSelection returns an empty selection with quantity 1.
func NewSelection() Selection {
	return Selection{Quantity: 1}
}

// SelectDate switches to date. Slots are date scoped, so any selected slot
// is cleared.
func (s *Selection) SelectDate(date catalog.Date) {
	s.Date = date
	s.Slot = nil
}

// SelectSlot picks the slot with the given time label on the selected date.
// The quantity is clamped down to the slot's capacity if needed.
func (s *Selection) SelectSlot(slots []catalog.Slot, time string) error {
	slot, ok := availability.FindSlot(slots, s.Date, time)
	if !ok {
		return ErrSlotNotFound
	}
	if !availability.IsSelectable(slot) {
		return ErrSlotUnavailable
	}

	s.Slot = &slot
	s.Quantity = availability.ClampQuantity(s.Quantity, slot)
	return nil
}

// SetQuantity changes the quantity. Without a slot only a quantity of 1 is
// accepted; with a slot the quantity must fit its capacity.
func (s *Selection) SetQuantity(q int) error {
	if q < 1 {
		return pricing.ErrInvalidInput
	}
	if s.Slot == nil {
		if q > 1 {
			return ErrSlotRequired
		}
	} else if !availability.CanSatisfy(*s.Slot, q) {
		return ErrQuantityExceedsCapacity
	}

	s.Quantity = q
	return nil
}

package booking

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/checkout"
	"github.com/nekogravitycat/experience-booking/internal/pkg/apperror"
	"github.com/nekogravitycat/experience-booking/internal/pricing"
)

var (
	ErrSessionNotFound         = apperror.New(http.StatusNotFound, "booking session not found")
	ErrSlotNotFound            = apperror.New(http.StatusNotFound, "no slot at that time on the selected date")
	ErrSlotUnavailable         = apperror.New(http.StatusConflict, "slot is sold out")
	ErrSlotRequired            = apperror.New(http.StatusConflict, "select a time slot first")
	ErrQuantityExceedsCapacity = apperror.New(http.StatusConflict, "quantity exceeds remaining capacity")
	ErrAlreadyCheckedOut       = apperror.New(http.StatusConflict, "booking has already been checked out")
	ErrNoResult                = apperror.New(http.StatusNotFound, "booking has not been checked out")
)

// Session is the booking state of one browsing session.
// Selection, Promo and task are guarded by mu; LastSeenAt is owned by the Store.
type Session struct {
	mu sync.Mutex

	ID         string
	Experience catalog.Experience
	Slots      []catalog.Slot
	Selection  Selection
	Promo      pricing.ActivePromo
	CreatedAt  time.Time
	LastSeenAt time.Time

	processing atomic.Bool
	task       *checkout.Task
}

// Snapshot is a consistent copy of a session with its derived price.
type Snapshot struct {
	ID         string
	Experience catalog.Experience
	Dates      []catalog.Date
	Date       catalog.Date
	Slots      []catalog.Slot // slots on Date
	Slot       *catalog.Slot
	Quantity   int
	Price      pricing.Breakdown
	Processing bool
	Result     *checkout.Result
	CreatedAt  time.Time
}

// QuoteRequest prices a selection without a session.
type QuoteRequest struct {
	ExperienceID string
	Date         catalog.Date
	Time         string
	Quantity     int
	PromoCode    string
}

// Quote is the result of a stateless price request.
type Quote struct {
	Experience catalog.Experience
	Slot       catalog.Slot
	Quantity   int
	Price      pricing.Breakdown
}

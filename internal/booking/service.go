package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/experience-booking/internal/availability"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/checkout"
	"github.com/nekogravitycat/experience-booking/internal/pricing"
)

type Service interface {
	// Quote prices a selection without creating a session.
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)

	Start(ctx context.Context, experienceID string) (*Snapshot, error)
	Get(ctx context.Context, id string) (*Snapshot, error)
	SelectDate(ctx context.Context, id string, date catalog.Date) (*Snapshot, error)
	SelectSlot(ctx context.Context, id string, slotTime string) (*Snapshot, error)
	SetQuantity(ctx context.Context, id string, quantity int) (*Snapshot, error)
	ApplyPromo(ctx context.Context, id string, code string) (*Snapshot, error)
	RemovePromo(ctx context.Context, id string) (*Snapshot, error)

	// Checkout submits the form and waits for processing to finish.
	// If ctx ends first the checkout keeps running and its outcome is
	// available through Result.
	Checkout(ctx context.Context, id string, form checkout.Form) (checkout.Result, error)
	Result(ctx context.Context, id string) (checkout.Result, error)

	// Delete discards a session. A running checkout still completes.
	Delete(ctx context.Context, id string) error
}

type service struct {
	store     Store
	catalog   catalog.Service
	engine    *pricing.Engine
	processor *checkout.Processor
}

func NewService(store Store, catalogService catalog.Service, engine *pricing.Engine, processor *checkout.Processor) Service {
	return &service{
		store:     store,
		catalog:   catalogService,
		engine:    engine,
		processor: processor,
	}
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	exp, err := s.catalog.GetByID(ctx, req.ExperienceID)
	if err != nil {
		return nil, err
	}
	slots, err := s.catalog.Slots(ctx, exp.ID)
	if err != nil {
		return nil, err
	}

	slot, ok := availability.FindSlot(slots, req.Date, req.Time)
	if !ok {
		return nil, ErrSlotNotFound
	}
	if !availability.IsSelectable(slot) {
		return nil, ErrSlotUnavailable
	}
	if req.Quantity < 1 {
		return nil, pricing.ErrInvalidInput
	}
	if !availability.CanSatisfy(slot, req.Quantity) {
		return nil, ErrQuantityExceedsCapacity
	}

	var promo pricing.ActivePromo
	if req.PromoCode != "" {
		subtotal, err := pricing.ComputeSubtotal(exp.Price, req.Quantity)
		if err != nil {
			return nil, err
		}
		if _, err := s.engine.ApplyPromo(&promo, req.PromoCode, subtotal); err != nil {
			return nil, err
		}
	}

	price, err := s.engine.Quote(exp.Price, req.Quantity, &promo)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Experience: *exp,
		Slot:       slot,
		Quantity:   req.Quantity,
		Price:      price,
	}, nil
}

func (s *service) Start(ctx context.Context, experienceID string) (*Snapshot, error) {
	exp, err := s.catalog.GetByID(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	slots, err := s.catalog.Slots(ctx, exp.ID)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:         uuid.NewString(),
		Experience: *exp,
		Slots:      slots,
		Selection:  NewSelection(),
		CreatedAt:  time.Now().UTC(),
	}

	// Pre-select the first date on offer.
	if dates := availability.ListDates(slots); len(dates) > 0 {
		sess.Selection.SelectDate(dates[0])
	}

	s.store.Add(sess)
	slog.Info("booking session started", "session_id", sess.ID, "experience_id", exp.ID)

	return s.snapshot(sess)
}

func (s *service) Get(ctx context.Context, id string) (*Snapshot, error) {
	return s.mutate(id, func(*Session) error { return nil })
}

func (s *service) SelectDate(ctx context.Context, id string, date catalog.Date) (*Snapshot, error) {
	return s.update(id, func(sess *Session) error {
		sess.Selection.SelectDate(date)
		return nil
	})
}

func (s *service) SelectSlot(ctx context.Context, id string, slotTime string) (*Snapshot, error) {
	return s.update(id, func(sess *Session) error {
		return sess.Selection.SelectSlot(sess.Slots, slotTime)
	})
}

func (s *service) SetQuantity(ctx context.Context, id string, quantity int) (*Snapshot, error) {
	return s.update(id, func(sess *Session) error {
		return sess.Selection.SetQuantity(quantity)
	})
}

func (s *service) ApplyPromo(ctx context.Context, id string, code string) (*Snapshot, error) {
	return s.update(id, func(sess *Session) error {
		subtotal, err := pricing.ComputeSubtotal(sess.Experience.Price, sess.Selection.Quantity)
		if err != nil {
			return err
		}
		if _, err := s.engine.ApplyPromo(&sess.Promo, code, subtotal); err != nil {
			slog.Info("promo code rejected", "session_id", sess.ID, "code", code, "error", err)
			return err
		}
		return nil
	})
}

func (s *service) RemovePromo(ctx context.Context, id string) (*Snapshot, error) {
	return s.update(id, func(sess *Session) error {
		sess.Promo.Remove()
		return nil
	})
}

func (s *service) Checkout(ctx context.Context, id string, form checkout.Form) (checkout.Result, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return checkout.Result{}, err
	}

	sess.mu.Lock()
	if sess.Selection.Slot == nil {
		sess.mu.Unlock()
		return checkout.Result{}, ErrSlotRequired
	}
	if sess.task != nil {
		sess.mu.Unlock()
		if taskDone(sess.task) {
			return checkout.Result{}, ErrAlreadyCheckedOut
		}
		return checkout.Result{}, checkout.ErrAlreadyProcessing
	}

	task, err := s.processor.Submit(form, &sess.processing)
	if err != nil {
		sess.mu.Unlock()
		return checkout.Result{}, err
	}
	sess.task = task
	sess.mu.Unlock()

	slog.Info("checkout submitted", "session_id", sess.ID, "experience_id", sess.Experience.ID)

	return task.Wait(ctx)
}

func (s *service) Result(ctx context.Context, id string) (checkout.Result, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return checkout.Result{}, err
	}

	sess.mu.Lock()
	task := sess.task
	sess.mu.Unlock()

	if task == nil {
		return checkout.Result{}, ErrNoResult
	}
	if !taskDone(task) {
		return checkout.Result{}, checkout.ErrAlreadyProcessing
	}
	return task.Result(), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)
	slog.Info("booking session deleted", "session_id", id)
	return nil
}

// update applies fn to a session that has not been checked out.
func (s *service) update(id string, fn func(*Session) error) (*Snapshot, error) {
	return s.mutate(id, func(sess *Session) error {
		if sess.task != nil {
			return ErrAlreadyCheckedOut
		}
		return fn(sess)
	})
}

// mutate loads a session, applies fn under its lock and returns a snapshot.
func (s *service) mutate(id string, fn func(*Session) error) (*Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		return nil, err
	}
	return s.snapshotLocked(sess)
}

func (s *service) snapshot(sess *Session) (*Snapshot, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshotLocked(sess)
}

func (s *service) snapshotLocked(sess *Session) (*Snapshot, error) {
	sel := sess.Selection

	price, err := s.engine.Quote(sess.Experience.Price, sel.Quantity, &sess.Promo)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:         sess.ID,
		Experience: sess.Experience,
		Dates:      availability.ListDates(sess.Slots),
		Date:       sel.Date,
		Slots:      availability.SlotsForDate(sess.Slots, sel.Date),
		Quantity:   sel.Quantity,
		Price:      price,
		Processing: sess.processing.Load(),
		CreatedAt:  sess.CreatedAt,
	}
	if sel.Slot != nil {
		slot := *sel.Slot
		snap.Slot = &slot
	}
	if sess.task != nil && taskDone(sess.task) {
		res := sess.task.Result()
		snap.Result = &res
	}
	return snap, nil
}

func taskDone(t *checkout.Task) bool {
	select {
	case <-t.Done():
		return true
	default:
		return false
	}
}

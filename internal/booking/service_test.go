package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/checkout"
	"github.com/nekogravitycat/experience-booking/internal/pricing"
)

func newTestService(delay time.Duration) Service {
	repo := catalog.NewStaticRepository(
		[]catalog.Experience{{ID: "kayak", Name: "Kayaking in Udupi", Price: 999}},
		map[string][]catalog.Slot{"kayak": testSlots},
	)
	return NewService(
		NewMemoryStore(time.Hour),
		catalog.NewService(repo),
		pricing.NewEngine(pricing.DefaultTaxRate, nil),
		checkout.NewProcessor(delay, nil),
	)
}

func TestBookingFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(10 * time.Millisecond)

	snap, err := svc.Start(ctx, "kayak")
	require.NoError(t, err)
	assert.Equal(t, catalog.Date("2024-11-06"), snap.Date, "first date is pre-selected")
	assert.Equal(t, []catalog.Date{"2024-11-06", "2024-11-07", "2024-11-08"}, snap.Dates)
	assert.Len(t, snap.Slots, 2)
	assert.Nil(t, snap.Slot)
	id := snap.ID

	snap, err = svc.SelectSlot(ctx, id, "01:00 pm")
	require.NoError(t, err)
	require.NotNil(t, snap.Slot)

	snap, err = svc.SetQuantity(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, pricing.Breakdown{Subtotal: 1998, Tax: 120, Total: 2118}, snap.Price)

	snap, err = svc.ApplyPromo(ctx, id, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, int64(200), snap.Price.Discount)
	assert.Equal(t, int64(1918), snap.Price.Total)

	_, err = svc.ApplyPromo(ctx, id, "BOGUS")
	assert.ErrorIs(t, err, pricing.ErrInvalidPromoCode)
	snap, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", snap.Price.PromoCode, "rejected code keeps the active promo")

	snap, err = svc.RemovePromo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap.Price.Discount)
	assert.Equal(t, int64(2118), snap.Price.Total)

	_, err = svc.Result(ctx, id)
	assert.ErrorIs(t, err, ErrNoResult)

	res, err := svc.Checkout(ctx, id, checkout.Form{Name: "Jane Doe", Email: "jane@example.com", AgreedToTerms: true})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Regexp(t, regexp.MustCompile(`^BKG-[A-Z0-9]{6}$`), res.ReferenceID)

	stored, err := svc.Result(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, res, stored)

	_, err = svc.Checkout(ctx, id, checkout.Form{Name: "Jane Doe", Email: "jane@example.com", AgreedToTerms: true})
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)

	_, err = svc.SetQuantity(ctx, id, 1)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut, "selection is frozen after checkout")
}

func TestDateChangeClearsSlotAndClampsLater(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(0)

	snap, err := svc.Start(ctx, "kayak")
	require.NoError(t, err)
	id := snap.ID

	_, err = svc.SelectSlot(ctx, id, "01:00 pm")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, id, 8)
	require.NoError(t, err)

	snap, err = svc.SelectDate(ctx, id, "2024-11-07")
	require.NoError(t, err)
	assert.Nil(t, snap.Slot)
	assert.Equal(t, 8, snap.Quantity)

	snap, err = svc.SelectSlot(ctx, id, "11:00 am")
	require.NoError(t, err)
	assert.Equal(t, 4, snap.Quantity)
	assert.Equal(t, int64(999*4), snap.Price.Subtotal)
}

func TestPromoFollowsQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(0)

	snap, err := svc.Start(ctx, "kayak")
	require.NoError(t, err)
	id := snap.ID

	_, err = svc.ApplyPromo(ctx, id, "save10")
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, id, "01:00 pm")
	require.NoError(t, err)

	snap, err = svc.SetQuantity(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(300), snap.Price.Discount, "discount is recomputed from the current subtotal")
}

func TestCheckoutErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(50 * time.Millisecond)
	valid := checkout.Form{Name: "Jane Doe", Email: "jane@example.com", AgreedToTerms: true}

	snap, err := svc.Start(ctx, "kayak")
	require.NoError(t, err)
	id := snap.ID

	_, err = svc.Checkout(ctx, id, valid)
	assert.ErrorIs(t, err, ErrSlotRequired)

	_, err = svc.SelectSlot(ctx, id, "11:00 am")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, id, checkout.Form{})
	assert.ErrorIs(t, err, checkout.ErrValidation)

	// Stop waiting straight away; processing continues in the background.
	waitCtx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.Checkout(waitCtx, id, valid)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, checkout.ErrStillProcessing)

	snap, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, snap.Processing)

	_, err = svc.Checkout(ctx, id, valid)
	assert.ErrorIs(t, err, checkout.ErrAlreadyProcessing)

	assert.Eventually(t, func() bool {
		res, err := svc.Result(ctx, id)
		return err == nil && res.Success
	}, time.Second, 10*time.Millisecond)

	snap, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, snap.Processing)
	require.NotNil(t, snap.Result)
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(0)

	q, err := svc.Quote(ctx, QuoteRequest{ExperienceID: "kayak", Date: "2024-11-06", Time: "01:00 pm", Quantity: 2, PromoCode: "SAVE10"})
	require.NoError(t, err)
	assert.Equal(t, pricing.Breakdown{Subtotal: 1998, Tax: 120, Discount: 200, Total: 1918, PromoCode: "SAVE10"}, q.Price)

	tests := []struct {
		name string
		req  QuoteRequest
		want error
	}{
		{name: "Unknown experience", req: QuoteRequest{ExperienceID: "nope", Date: "2024-11-06", Time: "01:00 pm", Quantity: 1}, want: catalog.ErrNotFound},
		{name: "Unknown slot", req: QuoteRequest{ExperienceID: "kayak", Date: "2024-11-09", Time: "01:00 pm", Quantity: 1}, want: ErrSlotNotFound},
		{name: "Sold out", req: QuoteRequest{ExperienceID: "kayak", Date: "2024-11-08", Time: "01:00 pm", Quantity: 1}, want: ErrSlotUnavailable},
		{name: "Zero quantity", req: QuoteRequest{ExperienceID: "kayak", Date: "2024-11-06", Time: "01:00 pm", Quantity: 0}, want: pricing.ErrInvalidInput},
		{name: "Over capacity", req: QuoteRequest{ExperienceID: "kayak", Date: "2024-11-07", Time: "11:00 am", Quantity: 5}, want: ErrQuantityExceedsCapacity},
		{name: "Bad promo", req: QuoteRequest{ExperienceID: "kayak", Date: "2024-11-06", Time: "01:00 pm", Quantity: 1, PromoCode: "BOGUS"}, want: pricing.ErrInvalidPromoCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Quote(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnknownSession(t *testing.T) {
	svc := newTestService(0)
	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(0)

	snap, err := svc.Start(ctx, "kayak")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, snap.ID))

	_, err = svc.Get(ctx, snap.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, snap.ID), ErrSessionNotFound)
}

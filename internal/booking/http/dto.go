package http

import (
	"time"

	"github.com/nekogravitycat/experience-booking/internal/booking"
	catalogHttp "github.com/nekogravitycat/experience-booking/internal/catalog/http"
	"github.com/nekogravitycat/experience-booking/internal/checkout"
	"github.com/nekogravitycat/experience-booking/internal/pricing"
)

type CreateSessionRequest struct {
	ExperienceID string `json:"experience_id" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectSlotRequest struct {
	Time string `json:"time" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

// CheckoutRequest carries the checkout form. Field rules are enforced by the
// checkout package so that every failing field is reported at once.
type CheckoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	AgreedToTerms bool   `json:"agreed_to_terms"`
}

type QuoteRequest struct {
	ExperienceID string `json:"experience_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	PromoCode    string `json:"promo_code"`
}

type PriceResponse struct {
	Subtotal  int64  `json:"subtotal"`
	Tax       int64  `json:"tax"`
	Discount  int64  `json:"discount"`
	Total     int64  `json:"total"`
	PromoCode string `json:"promo_code,omitempty"`
}

func NewPriceResponse(b pricing.Breakdown) PriceResponse {
	return PriceResponse{
		Subtotal:  b.Subtotal,
		Tax:       b.Tax,
		Discount:  b.Discount,
		Total:     b.Total,
		PromoCode: b.PromoCode,
	}
}

type ResultResponse struct {
	Success     bool   `json:"success"`
	ReferenceID string `json:"reference_id"`
}

func NewResultResponse(r checkout.Result) ResultResponse {
	return ResultResponse{Success: r.Success, ReferenceID: r.ReferenceID}
}

type SessionResponse struct {
	ID         string                     `json:"id"`
	Experience catalogHttp.ExperienceTag  `json:"experience"`
	Dates      []string                   `json:"dates"`
	Date       string                     `json:"date,omitempty"`
	Slots      []catalogHttp.SlotResponse `json:"slots"`
	Slot       *catalogHttp.SlotResponse  `json:"slot"`
	Quantity   int                        `json:"quantity"`
	Price      PriceResponse              `json:"price"`
	Processing bool                       `json:"processing"`
	Result     *ResultResponse            `json:"result,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
}

func NewSessionResponse(s *booking.Snapshot) SessionResponse {
	resp := SessionResponse{
		ID: s.ID,
		Experience: catalogHttp.ExperienceTag{
			ID:    s.Experience.ID,
			Name:  s.Experience.Name,
			Price: s.Experience.Price,
		},
		Dates:      catalogHttp.NewDatesResponse(s.Dates).Dates,
		Date:       string(s.Date),
		Slots:      catalogHttp.NewSlotResponses(s.Slots),
		Quantity:   s.Quantity,
		Price:      NewPriceResponse(s.Price),
		Processing: s.Processing,
		CreatedAt:  s.CreatedAt,
	}
	if s.Slot != nil {
		slot := catalogHttp.NewSlotResponse(*s.Slot)
		resp.Slot = &slot
	}
	if s.Result != nil {
		res := NewResultResponse(*s.Result)
		resp.Result = &res
	}
	return resp
}

type QuoteResponse struct {
	Experience catalogHttp.ExperienceTag `json:"experience"`
	Slot       catalogHttp.SlotResponse  `json:"slot"`
	Quantity   int                       `json:"quantity"`
	Price      PriceResponse             `json:"price"`
}

func NewQuoteResponse(q *booking.Quote) QuoteResponse {
	return QuoteResponse{
		Experience: catalogHttp.ExperienceTag{
			ID:    q.Experience.ID,
			Name:  q.Experience.Name,
			Price: q.Experience.Price,
		},
		Slot:     catalogHttp.NewSlotResponse(q.Slot),
		Quantity: q.Quantity,
		Price:    NewPriceResponse(q.Price),
	}
}

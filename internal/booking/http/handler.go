package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/experience-booking/internal/booking"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/checkout"
	"github.com/nekogravitycat/experience-booking/internal/pkg/request"
	"github.com/nekogravitycat/experience-booking/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// bindID reads the session ID path parameter. It writes the error response
// and returns false when the ID is not a UUID.
func bindID(c *gin.Context) (string, bool) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid session id", err)
		return "", false
	}
	return uri.ID, true
}

func (h *Handler) Quote(c *gin.Context) {
	var body QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	date, err := catalog.ParseDate(body.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	q, err := h.service.Quote(c.Request.Context(), booking.QuoteRequest{
		ExperienceID: body.ExperienceID,
		Date:         date,
		Time:         body.Time,
		Quantity:     body.Quantity,
		PromoCode:    body.PromoCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewQuoteResponse(q))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateSessionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	snap, err := h.service.Start(c.Request.Context(), body.ExperienceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewSessionResponse(snap))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	snap, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(snap))
}

func (h *Handler) SelectDate(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body SelectDateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	date, err := catalog.ParseDate(body.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.service.SelectDate(c.Request.Context(), id, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(snap))
}

func (h *Handler) SelectSlot(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body SelectSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	snap, err := h.service.SelectSlot(c.Request.Context(), id, body.Time)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(snap))
}

func (h *Handler) SetQuantity(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body SetQuantityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	snap, err := h.service.SetQuantity(c.Request.Context(), id, body.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(snap))
}

func (h *Handler) ApplyPromo(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body ApplyPromoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	snap, err := h.service.ApplyPromo(c.Request.Context(), id, body.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(snap))
}

func (h *Handler) RemovePromo(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	snap, err := h.service.RemovePromo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(snap))
}

func (h *Handler) Checkout(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body CheckoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, "invalid request body", err)
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), id, checkout.Form{
		Name:          body.Name,
		Email:         body.Email,
		AgreedToTerms: body.AgreedToTerms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResultResponse(res))
}

func (h *Handler) Result(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	res, err := h.service.Result(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResultResponse(res))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/experience-booking/internal/availability"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListExperiencesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, "invalid query parameters", err)
		return
	}

	filter := catalog.Filter{
		Query:  req.Query,
		Offset: req.Offset(),
		Limit:  req.PageSize,
	}

	experiences, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ExperienceResponse, len(experiences))
	for i, e := range experiences {
		items[i] = NewExperienceResponse(e)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	exp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewExperienceDetailResponse(exp))
}

func (h *Handler) ListDates(c *gin.Context) {
	slots, err := h.service.Slots(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDatesResponse(availability.ListDates(slots)))
}

func (h *Handler) ListSlots(c *gin.Context) {
	var req ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, "invalid query parameters", err)
		return
	}

	date, err := catalog.ParseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.service.Slots(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, SlotsResponse{
		Date:  string(date),
		Slots: NewSlotResponses(availability.SlotsForDate(slots, date)),
	})
}

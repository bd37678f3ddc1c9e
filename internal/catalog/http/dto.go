package http

import (
	"github.com/nekogravitycat/experience-booking/internal/availability"
	"github.com/nekogravitycat/experience-booking/internal/catalog"
	"github.com/nekogravitycat/experience-booking/internal/pkg/request"
)

// ListExperiencesRequest defines query parameters for searching the catalog.
type ListExperiencesRequest struct {
	request.ListParams
	Query string `form:"q" binding:"omitempty,max=100"`
}

// ListSlotsRequest selects the date whose slots are listed.
type ListSlotsRequest struct {
	Date string `form:"date" binding:"required"`
}

type ExperienceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Location    string  `json:"location"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
}

func NewExperienceResponse(e *catalog.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		Rating:      e.Rating,
	}
}

// ExperienceDetailResponse adds the long description shown on the detail page.
type ExperienceDetailResponse struct {
	ExperienceResponse
	FullDescription string `json:"full_description"`
}

func NewExperienceDetailResponse(e *catalog.Experience) ExperienceDetailResponse {
	return ExperienceDetailResponse{
		ExperienceResponse: NewExperienceResponse(e),
		FullDescription:    e.FullDescription,
	}
}

// ExperienceTag is a compact reference to an experience, embedded in other responses.
type ExperienceTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}

func NewDatesResponse(dates []catalog.Date) DatesResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = string(d)
	}
	return DatesResponse{Dates: out}
}

type SlotResponse struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Capacity    int    `json:"capacity"`
	MaxQuantity int    `json:"max_quantity"`
	Selectable  bool   `json:"selectable"`
	LowStock    bool   `json:"low_stock"`
	AlmostFull  bool   `json:"almost_full"`
}

func NewSlotResponse(s catalog.Slot) SlotResponse {
	return SlotResponse{
		Date:        string(s.Date),
		Time:        s.Time,
		Capacity:    s.Capacity,
		MaxQuantity: availability.MaxQuantity(s),
		Selectable:  availability.IsSelectable(s),
		LowStock:    availability.IsLowStock(s),
		AlmostFull:  availability.IsAlmostFull(s),
	}
}

func NewSlotResponses(slots []catalog.Slot) []SlotResponse {
	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}
	return items
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

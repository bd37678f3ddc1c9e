package catalog

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/experience-booking/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "experience not found")
	ErrInvalidDate = apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
)

// Experience is a bookable activity with a fixed unit price.
// Price is expressed in the smallest currency unit.
type Experience struct {
	ID              string
	Name            string
	Description     string
	FullDescription string
	Price           int64
	Location        string
	ImageURL        string
	Rating          float64
}

// Date is a wall-clock calendar date in YYYY-MM-DD form.
type Date string

// ParseDate validates s as a calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", apperror.Wrap(err, ErrInvalidDate.Code, ErrInvalidDate.Message)
	}
	return Date(s), nil
}

// Slot is a date+time bucket with remaining capacity.
// Time is a display label and is never parsed.
type Slot struct {
	Date     Date
	Time     string
	Capacity int
}

// Filter defines parameters for listing experiences.
type Filter struct {
	Query  string
	Offset int
	Limit  int
}

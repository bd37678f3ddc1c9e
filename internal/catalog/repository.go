package catalog

import (
	"context"
	"slices"
	"strings"
)

// Repository is a read-only source of experiences and their slots.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Experience, error)
	List(ctx context.Context, filter Filter) ([]*Experience, int, error)
	// Slots returns the slot schedule of an experience in catalog order.
	Slots(ctx context.Context, experienceID string) ([]Slot, error)
}

type staticRepository struct {
	experiences []Experience
	slots       map[string][]Slot
}

// NewStaticRepository builds an in-memory repository.
// The inputs are copied; later changes by the caller are not observed.
func NewStaticRepository(experiences []Experience, slots map[string][]Slot) Repository {
	r := &staticRepository{
		experiences: slices.Clone(experiences),
		slots:       make(map[string][]Slot, len(slots)),
	}
	for id, s := range slots {
		r.slots[id] = slices.Clone(s)
	}
	return r
}

func (r *staticRepository) GetByID(ctx context.Context, id string) (*Experience, error) {
	for _, e := range r.experiences {
		if e.ID == id {
			exp := e
			return &exp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *staticRepository) List(ctx context.Context, filter Filter) ([]*Experience, int, error) {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var matched []*Experience
	for _, e := range r.experiences {
		if query != "" && !matches(e, query) {
			continue
		}
		exp := e
		matched = append(matched, &exp)
	}

	total := len(matched)

	// Pagination
	if filter.Offset > total {
		filter.Offset = total
	}
	end := total
	if filter.Limit > 0 && filter.Offset+filter.Limit < total {
		end = filter.Offset + filter.Limit
	}

	return matched[filter.Offset:end], total, nil
}

func (r *staticRepository) Slots(ctx context.Context, experienceID string) ([]Slot, error) {
	if _, err := r.GetByID(ctx, experienceID); err != nil {
		return nil, err
	}
	return slices.Clone(r.slots[experienceID]), nil
}

// matches reports whether query (already lower-cased) occurs in the
// experience's name, location or description.
func matches(e Experience, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Location), query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}

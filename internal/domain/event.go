package domain

import "time"

// CategoryAll is the sentinel filter value that matches every event.
const CategoryAll = "all"

type Event struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // "2006-01-02"
	Time        string  `json:"time"` // "15:04"
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Capacity    int     `json:"capacity"`
	// Attendees caches the sum of ticket counts across the event's
	// registrations. Display only; capacity decisions re-aggregate from
	// the registration rows.
	Attendees int       `json:"attendees"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Remaining reports how many tickets are still available given the
// confirmed ticket count.
func (e Event) Remaining(confirmed int) int {
	return e.Capacity - confirmed
}

// HasCapacityFor reports whether requested tickets still fit. The boundary
// is inclusive: a request for exactly the remaining capacity succeeds.
func (e Event) HasCapacityFor(confirmed, requested int) bool {
	return confirmed+requested <= e.Capacity
}

package venue

import "github.com/mhofbauer/venue-calendar/internal/slot"

// Day is one venue's slot listing for a single date. Constructed once
// per row parse and immutable afterwards.
type Day struct {
	ID    int             `json:"venue_id"`
	Name  string          `json:"venue_name"`
	Slots []slot.TimeSlot `json:"available_slots"`
}

// NewDay creates a Day with an empty, non-nil slot list so it always
// serializes as [] rather than null.
func NewDay(id int, name string) *Day {
	return &Day{
		ID:    id,
		Name:  name,
		Slots: make([]slot.TimeSlot, 0),
	}
}

// HasAvailable reports whether at least one slot is bookable.
func (d *Day) HasAvailable() bool {
	for _, s := range d.Slots {
		if s.Status == slot.StatusAvailable {
			return true
		}
	}
	return false
}

// DayResult is the outcome of fetching and parsing one calendar date.
// A failed fetch is recorded in Error with an empty venue list; it is
// never surfaced as an error value so one bad date cannot abort a run.
type DayResult struct {
	Date            string `json:"date"`
	URL             string `json:"url,omitempty"`
	Venues          []*Day `json:"venues"`
	TotalVenues     int    `json:"total_venues"`
	VenuesWithSlots int    `json:"venues_with_slots"`
	FetchedAt       string `json:"fetched_at,omitempty"`
	Error           string `json:"error,omitempty"`
}

// NewDayResult creates an empty result for a date.
func NewDayResult(date string) *DayResult {
	return &DayResult{
		Date:   date,
		Venues: make([]*Day, 0),
	}
}

// FailedDay records a fetch or parse failure for a date.
func FailedDay(date string, err error) *DayResult {
	return &DayResult{
		Date:   date,
		Venues: make([]*Day, 0),
		Error:  err.Error(),
	}
}

// Failed reports whether this date's fetch failed.
func (r *DayResult) Failed() bool {
	return r.Error != ""
}

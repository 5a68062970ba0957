package calendar

import (
	"sort"
	"time"

	"github.com/mhofbauer/venue-calendar/internal/slot"
	"github.com/mhofbauer/venue-calendar/internal/venue"
)

// Offering is one venue's slot surfaced in the grid at a given start
// time. It embeds a copy of the venue and slot fields so grid entries
// serialize independently of the day results they came from.
type Offering struct {
	VenueID     int         `json:"venue_id"`
	VenueName   string      `json:"venue_name"`
	TimeRange   string      `json:"time_range"`
	TimeTo      string      `json:"time_to"`
	Price       string      `json:"price,omitempty"`
	Status      slot.Status `json:"status"`
	IsAvailable bool        `json:"is_available"`
	Reason      string      `json:"reason,omitempty"`
}

// DayGrid is one date's column in the calendar view.
type DayGrid struct {
	DayName       string                 `json:"day_name"`
	DayOfWeek     string                 `json:"day_of_week"`
	DateFormatted string                 `json:"date_formatted"`
	SlotsByTime   map[string][]*Offering `json:"slots_by_time"`
}

// Week is the assembled calendar for one aggregation run. The JSON
// field names are the wire contract the viewer depends on.
type Week struct {
	CalendarGrid map[string]*DayGrid `json:"calendar_grid"`
	SortedTimes  []string            `json:"sorted_times"`
	SortedDates  []string            `json:"sorted_dates"`
	StartDate    string              `json:"start_date,omitempty"`
	EndDate      string              `json:"end_date,omitempty"`
	TotalDays    int                 `json:"total_days"`
	AllDaysData  []*venue.DayResult  `json:"all_days_data"`
}

// Assemble pivots per-day results into a date × time grid. Failed days
// keep their place in SortedDates and AllDaysData but contribute no
// grid entries. StartDate and EndDate follow input order, not sort
// order, and stay empty for an empty input.
func Assemble(days []*venue.DayResult) *Week {
	week := &Week{
		CalendarGrid: make(map[string]*DayGrid),
		SortedTimes:  make([]string, 0),
		SortedDates:  make([]string, 0, len(days)),
		TotalDays:    len(days),
		AllDaysData:  days,
	}
	if week.AllDaysData == nil {
		week.AllDaysData = make([]*venue.DayResult, 0)
	}

	times := make(map[string]struct{})
	for _, day := range days {
		week.SortedDates = append(week.SortedDates, day.Date)
		if day.Failed() {
			continue
		}

		grid := newDayGrid(day.Date)
		week.CalendarGrid[day.Date] = grid

		for _, v := range day.Venues {
			for _, ts := range v.Slots {
				times[ts.TimeFrom] = struct{}{}
				grid.SlotsByTime[ts.TimeFrom] = append(grid.SlotsByTime[ts.TimeFrom], &Offering{
					VenueID:     v.ID,
					VenueName:   v.Name,
					TimeRange:   ts.Time,
					TimeTo:      ts.TimeTo,
					Price:       ts.Price,
					Status:      ts.Status,
					IsAvailable: ts.IsAvailable,
					Reason:      ts.Reason,
				})
			}
		}
	}

	for t := range times {
		week.SortedTimes = append(week.SortedTimes, t)
	}
	// Lexicographic order is chronological for zero-padded HH:MM.
	sort.Strings(week.SortedTimes)
	sort.Strings(week.SortedDates)

	if len(days) > 0 {
		week.StartDate = days[0].Date
		week.EndDate = days[len(days)-1].Date
	}

	return week
}

// newDayGrid derives the display strings for one 8-digit date.
func newDayGrid(date string) *DayGrid {
	grid := &DayGrid{SlotsByTime: make(map[string][]*Offering)}

	t, err := time.Parse("20060102", date)
	if err != nil {
		grid.DayName = date
		return grid
	}

	grid.DayName = t.Format("Mon 02.01")
	grid.DayOfWeek = t.Format("Monday")
	grid.DateFormatted = t.Format("02.01.2006")
	return grid
}

// OfferingCount returns the number of grid entries for one date.
func (w *Week) OfferingCount(date string) int {
	grid, ok := w.CalendarGrid[date]
	if !ok {
		return 0
	}
	count := 0
	for _, offerings := range grid.SlotsByTime {
		count += len(offerings)
	}
	return count
}

package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhofbauer/venue-calendar/internal/slot"
)

// GenerateICS renders every bookable offering in the week as an
// iCalendar file, one VEVENT per venue and time range. Failed days and
// non-available offerings are skipped.
func GenerateICS(week *Week) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Venue Calendar//venue-calendar//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(time.Now().UTC())

	for _, date := range week.SortedDates {
		grid, ok := week.CalendarGrid[date]
		if !ok {
			continue
		}
		for _, timeFrom := range week.SortedTimes {
			for _, offering := range grid.SlotsByTime[timeFrom] {
				if offering.Status != slot.StatusAvailable {
					continue
				}
				writeEvent(&ics, date, timeFrom, offering, stamp)
			}
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, date, timeFrom string, offering *Offering, stamp string) {
	start, err := time.Parse("20060102 15:04", date+" "+timeFrom)
	if err != nil {
		return
	}
	end, err := time.Parse("20060102 15:04", date+" "+offering.TimeTo)
	if err != nil {
		end = start.Add(time.Hour)
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s-%s-%d@venue-calendar\r\n",
		date, strings.ReplaceAll(timeFrom, ":", ""), offering.VenueID)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(ics, "DTSTART:%s\r\n", formatICSTime(start))
	fmt.Fprintf(ics, "DTEND:%s\r\n", formatICSTime(end))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(offering.VenueName))

	description := fmt.Sprintf("Free slot %s", offering.TimeRange)
	if offering.Price != "" {
		description += fmt.Sprintf(", price %s", offering.Price)
	}
	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(description))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

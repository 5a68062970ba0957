package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mhofbauer/venue-calendar/internal/slot"
	"github.com/mhofbauer/venue-calendar/internal/venue"
)

// venueIDPattern extracts the numeric venue id from a row link href
// like "/stadt-linz/venues/v/86/20260209/".
var venueIDPattern = regexp.MustCompile(`/v/(\d+)/`)

// ParseDay extracts every venue row from one availability fragment.
// TotalVenues counts all table rows, including non-venue rows that are
// skipped; Venues holds every row with a parseable id, even when its
// slot list is empty.
func ParseDay(r io.Reader, date string) (*venue.DayResult, error) {
	fragment, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fragment: %w", err)
	}

	// The endpoint returns bare <tr> elements. The HTML5 parser drops
	// table rows that appear outside a table, so give them one.
	wrapped := "<table>" + string(fragment) + "</table>"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(wrapped))
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	result := venue.NewDayResult(date)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		result.TotalVenues++

		day := parseRow(row)
		if day == nil {
			return
		}

		result.Venues = append(result.Venues, day)
		if day.HasAvailable() {
			result.VenuesWithSlots++
		}
	})

	return result, nil
}

// parseRow turns one table row into a venue day. Rows without a venue
// link or without a parseable id are not venue rows and yield nil.
func parseRow(row *goquery.Selection) *venue.Day {
	firstCell := row.Find("td").First()
	if firstCell.Length() == 0 {
		return nil
	}

	link := firstCell.Find("a.timetable-row-link").First()
	if link.Length() == 0 {
		return nil
	}

	href, _ := link.Attr("href")
	m := venueIDPattern.FindStringSubmatch(href)
	if m == nil {
		return nil
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return nil
	}

	day := venue.NewDay(id, venueName(link))

	// Running cursor in 5-minute units across the row's slot cells.
	cellIndex := 0
	row.Find("td.slot").Each(func(_ int, cell *goquery.Selection) {
		// Zero-width cells are layout padding, not grid columns.
		if style, _ := cell.Attr("style"); strings.Contains(style, "width: 0px") {
			return
		}

		colspan := 1
		if v, ok := cell.Attr("colspan"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				colspan = n
			}
		}

		if ts, ok := parseCell(cell, cellIndex, colspan); ok {
			day.Slots = append(day.Slots, ts)
		}
		cellIndex += colspan
	})

	return day
}

// parseCell decodes one slot cell. Cells narrower than a display hour
// are sub-resolution padding and are dropped after advancing the cursor.
func parseCell(cell *goquery.Selection, cellIndex, colspan int) (slot.TimeSlot, bool) {
	if colspan < slot.UnitsPerHour {
		return slot.TimeSlot{}, false
	}

	rng := slot.DecodeGeometry(cellIndex, colspan, slot.GridStartHour)

	classes := strings.Fields(cell.AttrOr("class", ""))
	action := cell.AttrOr("onclick", "")
	advisory := cell.AttrOr("title", "")
	if advisory == "" {
		advisory = cell.AttrOr("aria-label", "")
	}

	c := slot.Classify(classes, action, advisory)
	if c.BookedRange != nil {
		rng = *c.BookedRange
	}

	return slot.TimeSlot{
		Time:        rng.String(),
		TimeFrom:    rng.From,
		TimeTo:      rng.To,
		Price:       strings.TrimSpace(cell.Text()),
		Status:      c.Status,
		IsAvailable: c.IsAvailable,
		Reason:      c.Reason,
	}, true
}

// venueName joins the facility label with any trailing free text in the
// row link, collapsing runs of whitespace.
func venueName(link *goquery.Selection) string {
	name := link.Text()

	if facility := link.Find("span.facility_name").First(); facility.Length() > 0 {
		var trailing strings.Builder
		link.Contents().Each(func(_ int, node *goquery.Selection) {
			if goquery.NodeName(node) == "#text" {
				trailing.WriteString(node.Text())
			}
		})

		facilityName := strings.TrimSpace(facility.Text())
		if rest := strings.TrimSpace(trailing.String()); rest != "" {
			name = facilityName + " - " + rest
		} else {
			name = facilityName
		}
	}

	return strings.Join(strings.Fields(name), " ")
}
